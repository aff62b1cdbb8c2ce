package pistache

// Method is an HTTP request method.
type Method int

const (
	Options Method = iota
	Get
	Post
	Head
	Patch
	Put
	Delete
	Trace
	Connect
	Propfind
	Proppatch
	Mkcol
	Copy
	Move
	Lock
	Unlock
)

// MethodString returns the wire representation of the method.
// Every method has an entry; an out-of-range value panics.
func MethodString(method Method) string {
	switch method {
	case Options:
		return "OPTIONS"
	case Get:
		return "GET"
	case Post:
		return "POST"
	case Head:
		return "HEAD"
	case Patch:
		return "PATCH"
	case Put:
		return "PUT"
	case Delete:
		return "DELETE"
	case Trace:
		return "TRACE"
	case Connect:
		return "CONNECT"
	case Propfind:
		return "PROPFIND"
	case Proppatch:
		return "PROPPATCH"
	case Mkcol:
		return "MKCOL"
	case Copy:
		return "COPY"
	case Move:
		return "MOVE"
	case Lock:
		return "LOCK"
	case Unlock:
		return "UNLOCK"
	}
	panic("unknown HTTP method")
}

func (m Method) String() string {
	return MethodString(m)
}
