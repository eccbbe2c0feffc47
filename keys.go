package microapp

type Key string

const (
	// AppNameKey stashes the name of the micro-app handling an HTTP request.
	AppNameKey Key = "AppNameKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by a micro-app.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "microapp context key: " + string(k)
}
