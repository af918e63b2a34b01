package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/DEENUU1/Jobs-portal/internal/application/ports"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
	"github.com/DEENUU1/Jobs-portal/internal/infrastructure/export"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
)

var _ ports.Dispatcher = (*Manager)(nil)

// ErrQueueFull la cola está llena y la tarea no se encoló.
var ErrQueueFull = errors.New("cola de tareas llena")

type jobKind int

const (
	kindEmail jobKind = iota
	kindExport
)

type job struct {
	id     string
	kind   jobKind
	email  ports.EmailJob
	export ports.ExportJob
}

// Manager despachador de tareas en segundo plano: una cola acotada y N workers.
// Encolar nunca bloquea; con la cola llena devuelve ErrQueueFull y el llamador
// decide (el núcleo lo registra y sigue).
type Manager struct {
	queue        chan job
	workers      int
	mailer       ports.Mailer
	applications repository.ApplicationRepository
	exportDir    string
	log          *logger.Logger

	wg      sync.WaitGroup
	started bool
	mu      sync.Mutex
}

// NewManager construye el despachador. Start debe llamarse antes de encolar.
func NewManager(workers, queueSize int, mailer ports.Mailer, applications repository.ApplicationRepository, exportDir string, log *logger.Logger) *Manager {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Manager{
		queue:        make(chan job, queueSize),
		workers:      workers,
		mailer:       mailer,
		applications: applications,
		exportDir:    exportDir,
		log:          log,
	}
}

// Start lanza los workers. Idempotente.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}
	m.started = true
	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}
	m.log.Info().Int("workers", m.workers).Int("queue_size", cap(m.queue)).Msg("despachador iniciado")
}

// Stop cierra la cola y espera a que los workers terminen las tareas pendientes,
// o hasta que el contexto expire.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = false
	close(m.queue)
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		m.log.Info().Msg("despachador detenido")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnqueueEmail encola un correo. Devuelve el ID de la tarea.
func (m *Manager) EnqueueEmail(e ports.EmailJob) (string, error) {
	return m.enqueue(job{id: uuid.New().String(), kind: kindEmail, email: e})
}

// EnqueueExport encola la generación del CSV de postulaciones de una oferta.
func (m *Manager) EnqueueExport(e ports.ExportJob) (string, error) {
	return m.enqueue(job{id: uuid.New().String(), kind: kindExport, export: e})
}

func (m *Manager) enqueue(j job) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return "", errors.New("despachador no iniciado")
	}
	select {
	case m.queue <- j:
		return j.id, nil
	default:
		return "", ErrQueueFull
	}
}

func (m *Manager) worker(n int) {
	defer m.wg.Done()
	for j := range m.queue {
		if err := m.execute(j); err != nil {
			m.log.Error().Err(err).Str("job_id", j.id).Int("worker", n).Msg("tarea fallida")
			continue
		}
		m.log.Debug().Str("job_id", j.id).Int("worker", n).Msg("tarea completada")
	}
}

func (m *Manager) execute(j job) error {
	switch j.kind {
	case kindEmail:
		if err := m.mailer.Send(j.email.To, j.email.Subject, j.email.Body); err != nil {
			return fmt.Errorf("enviar correo: %w", err)
		}
		return nil
	case kindExport:
		return m.runExport(j.export)
	default:
		return fmt.Errorf("tipo de tarea desconocido: %d", j.kind)
	}
}

// runExport genera el CSV de postulaciones de la oferta y lo escribe en exportDir.
func (m *Manager) runExport(e ports.ExportJob) error {
	apps, err := m.applications.ListByOffer(e.OfferID, 0, 0)
	if err != nil {
		return fmt.Errorf("listar postulaciones: %w", err)
	}
	data, err := export.BuildApplicationsCSV(apps)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de exportación: %w", err)
	}
	path := filepath.Join(m.exportDir, fmt.Sprintf("applications_%s.csv", e.OfferID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir CSV: %w", err)
	}
	m.log.Info().Str("offer_id", e.OfferID).Str("path", path).Int("rows", len(apps)).Msg("exportación generada")
	return nil
}
