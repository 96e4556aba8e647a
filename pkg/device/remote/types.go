package remote

// Stats counts what a Service has received since it started.
type Stats struct {
	Datagrams int
	Bytes     int
	Applied   int
	Dropped   int
}
