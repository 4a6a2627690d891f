package stackreport

type LogRecord struct {
	level      string
	msg        string
	attributes map[string]any
}

func (r *LogRecord) AddAttrs(key string, value any) {
	r.attributes[key] = value
}
