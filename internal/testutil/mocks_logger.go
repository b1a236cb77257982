package testutil

// RecordingLogger implements logger.LoggerInterface and captures messages
// for assertions.
type RecordingLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) Debug(msg string, args ...any) { r.Debugs = append(r.Debugs, msg) }
func (r *RecordingLogger) Info(msg string, args ...any)  { r.Infos = append(r.Infos, msg) }
func (r *RecordingLogger) Warn(msg string, args ...any)  { r.Warns = append(r.Warns, msg) }
func (r *RecordingLogger) Error(msg string, args ...any) { r.Errors = append(r.Errors, msg) }
