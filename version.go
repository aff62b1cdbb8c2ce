package pistache

// Version is the HTTP protocol version of a request or response.
type Version int

const (
	Http10 Version = iota
	Http11
)

// VersionString returns the wire representation of the version.
// Every version has an entry; an out-of-range value panics.
func VersionString(version Version) string {
	switch version {
	case Http10:
		return "HTTP/1.0"
	case Http11:
		return "HTTP/1.1"
	}
	panic("unknown HTTP version")
}

func (v Version) String() string {
	return VersionString(v)
}
