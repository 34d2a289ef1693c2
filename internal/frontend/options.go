package frontend

// Recorder receives frontend serving events. *observability.Metrics
// satisfies it.
type Recorder interface {
	RecordFrontendServe(resolution string)
	SetFrontendAvailable(available bool)
}

// Resolution labels passed to [Recorder.RecordFrontendServe] besides the
// [ResolutionKind] strings.
const (
	servedAssetMiss   = "asset_miss"
	servedUnavailable = "unavailable"
	servedAsset       = "asset"
)

type nopRecorder struct{}

func (nopRecorder) RecordFrontendServe(string) {}
func (nopRecorder) SetFrontendAvailable(bool)  {}

// Option configures the routers returned by [New], [Available] and
// [Unavailable].
type Option func(*options)

type options struct {
	recorder Recorder
}

// WithRecorder reports every served response and the probe outcome to r.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
