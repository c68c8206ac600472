package benchmark

// UploadParams holds the parameters for an upload run.
type UploadParams struct {
	Endpoint    string // storage endpoint URL, recorded in log entries
	Bucket      string // target bucket name
	Location    string // region name passed to the storage client
	ObjectCount int    // number of objects to upload
	ObjectSize  string // size expression, e.g. "4k"
	RateLimit   int    // max uploads per second, 0 means no limit
}

// Process exit codes.
const (
	ExitOK           = 0
	ExitUploadFailed = 1
	ExitBadArguments = 2
)
