package dsn

// Field identifies one component of a parsed DSN
type Field int

const (
	FieldProtocol Field = iota
	FieldUser
	FieldPassword
	FieldHost
	FieldPort
	FieldOptions
)

var fieldNames = [...]string{
	FieldProtocol: "protocol",
	FieldUser:     "user",
	FieldPassword: "password",
	FieldHost:     "host",
	FieldPort:     "port",
	FieldOptions:  "options",
}

// String returns the key name of the field, which is also its capture group name
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields returns all fields in grammar order
func Fields() []Field {
	return []Field{FieldProtocol, FieldUser, FieldPassword, FieldHost, FieldPort, FieldOptions}
}

// FieldNames returns the key names of all fields in grammar order
func FieldNames() []string {
	names := make([]string, 0, len(fieldNames))
	for _, f := range Fields() {
		names = append(names, f.String())
	}
	return names
}
