package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEENUU1/Jobs-portal/internal/application/ports"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []ports.EmailJob
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, ports.EmailJob{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeApplicationRepo struct {
	apps []*entity.Application
}

func (r *fakeApplicationRepo) Create(*entity.Application) error                { return nil }
func (r *fakeApplicationRepo) GetByID(string) (*entity.Application, error)     { return nil, nil }
func (r *fakeApplicationRepo) ListByEmail(string) ([]*entity.Application, error) { return nil, nil }
func (r *fakeApplicationRepo) SetAnswered(string, bool) error                  { return nil }
func (r *fakeApplicationRepo) Delete(string) error                             { return nil }
func (r *fakeApplicationRepo) CountByCompany(string) (int, error)              { return 0, nil }

func (r *fakeApplicationRepo) ListByOffer(offerID string, limit, offset int) ([]*entity.Application, error) {
	return r.apps, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestManager_EnqueueEmail_Entrega(t *testing.T) {
	mailer := &fakeMailer{}
	m := NewManager(2, 10, mailer, &fakeApplicationRepo{}, t.TempDir(), testLogger())
	m.Start()

	id, err := m.EnqueueEmail(ports.EmailJob{To: "a@b.c", Subject: "hola", Body: "cuerpo"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))

	assert.Equal(t, 1, mailer.count())
	assert.Equal(t, "a@b.c", mailer.sent[0].To)
}

func TestManager_EnqueueExport_EscribeCSV(t *testing.T) {
	dir := t.TempDir()
	repo := &fakeApplicationRepo{apps: []*entity.Application{
		{
			OfferID:     "offer-1",
			FirstName:   "Kacper",
			LastName:    "Kowalski",
			Email:       "kacper@example.com",
			ExpectedPay: decimal.NewFromInt(15000),
		},
	}}
	m := NewManager(1, 10, &fakeMailer{}, repo, dir, testLogger())
	m.Start()

	_, err := m.EnqueueExport(ports.ExportJob{OfferID: "offer-1"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "applications_offer-1.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Full name,Email,Expected pay,Linkedin,Portfolio")
	assert.Contains(t, string(data), "Kacper Kowalski,kacper@example.com,15000")
}

func TestManager_Enqueue_SinIniciar(t *testing.T) {
	m := NewManager(1, 1, &fakeMailer{}, &fakeApplicationRepo{}, t.TempDir(), testLogger())
	_, err := m.EnqueueEmail(ports.EmailJob{To: "a@b.c"})
	assert.Error(t, err)
}

func TestManager_ColaLlena(t *testing.T) {
	// Un worker bloqueado y una cola de 1: el segundo encolado debe fallar.
	block := make(chan struct{})
	mailer := &blockingMailer{unblock: block}
	m := NewManager(1, 1, mailer, &fakeApplicationRepo{}, t.TempDir(), testLogger())
	m.Start()

	_, err := m.EnqueueEmail(ports.EmailJob{To: "primero"})
	require.NoError(t, err)

	// Esperar a que el worker tome la primera tarea y llenar la cola.
	require.Eventually(t, func() bool {
		_, err := m.EnqueueEmail(ports.EmailJob{To: "segundo"})
		return err == nil
	}, time.Second, 5*time.Millisecond)

	_, err = m.EnqueueEmail(ports.EmailJob{To: "tercero"})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(block)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
}

type blockingMailer struct {
	unblock chan struct{}
}

func (m *blockingMailer) Send(to, subject, body string) error {
	<-m.unblock
	return nil
}
