package exerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithSubject(name string) Option { return func(e *Error) { e.Subject = name } }
func WithFile(file string) Option    { return func(e *Error) { e.File = file } }
