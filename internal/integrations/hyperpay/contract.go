package hyperpay

// Logger интерфейс логирования, используемый клиентом
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
