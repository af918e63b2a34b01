package ports

// EmailJob correo a enviar en segundo plano.
type EmailJob struct {
	To      string
	Subject string
	Body    string
}

// ExportJob generación asíncrona del CSV de postulaciones de una oferta.
type ExportJob struct {
	OfferID string
}

// Dispatcher cola de tareas fire-and-forget. Encolar no garantiza entrega:
// el núcleo nunca espera ni consulta la finalización de una tarea, y un fallo
// al encolar se registra pero no se propaga a la operación que lo disparó.
type Dispatcher interface {
	EnqueueEmail(job EmailJob) (jobID string, err error)
	EnqueueExport(job ExportJob) (jobID string, err error)
}

// Mailer transporte de correo saliente. La implementación SMTP vive en
// infraestructura; en tests y en modo dev se sustituye.
type Mailer interface {
	Send(to, subject, body string) error
}
