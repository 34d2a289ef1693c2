package frontend

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/utils"
)

// NotBuiltMessage is the body of every response of the unavailable router.
const NotBuiltMessage = "Frontend not built. Run 'npm run build' in the frontend directory."

// New probes dir once and returns the matching router: [Available] when the
// build is usable, [Unavailable] otherwise. A missing build is logged as a
// warning and never fails startup.
func New(dir string, log *logger.Logger, opts ...Option) http.Handler {
	o := newOptions(opts)

	build, err := Probe(dir)
	if err != nil {
		log.Warn().Err(err).Str("build_dir", dir).
			Msg("frontend build directory not found or incomplete, serving 503 placeholder")
		o.recorder.SetFrontendAvailable(false)
		return Unavailable(err, opts...)
	}

	log.Info().Str("build_dir", build.Root()).Msg("serving frontend build")
	o.recorder.SetFrontendAvailable(true)
	return Available(build, opts...)
}

// Available returns a router serving build. Paths under /assets/ are served
// strictly, every other path goes through [Build.Resolve] and falls back to
// the entry document. Only GET and HEAD are routed.
func Available(build Build, opts ...Option) http.Handler {
	h := &staticHandler{build: build, recorder: newOptions(opts).recorder}

	router := chi.NewRouter()
	router.Use(middleware.GetHead)
	router.Get("/"+AssetsDir+"/*", h.serveAsset)
	router.Get("/*", h.serveCatchAll)

	return router
}

// Unavailable returns a handler that answers every path and method with
// 503 and a plain-text hint to build the frontend. reason is kept for
// diagnostics only.
func Unavailable(reason error, opts ...Option) http.Handler {
	return &unavailableHandler{reason: reason, recorder: newOptions(opts).recorder}
}

type unavailableHandler struct {
	reason   error
	recorder Recorder
}

func (u *unavailableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Err(u.reason).Msg("frontend request while build is missing")
	u.recorder.RecordFrontendServe(servedUnavailable)

	utils.WriteText(w, NotBuiltMessage, http.StatusServiceUnavailable)
}

type staticHandler struct {
	build    Build
	recorder Recorder
}

func (h *staticHandler) serveAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name, err := h.build.Asset(requestedPath(r))
	if err != nil {
		log.Debug().Err(err).Msg("asset lookup failed")
		if errors.Is(err, ErrAssetNotFound) {
			h.recorder.RecordFrontendServe(servedAssetMiss)
		}
		writeError(w, err)
		return
	}

	h.recorder.RecordFrontendServe(servedAsset)

	if err = serveFile(w, r, name); err != nil {
		log.Err(err).Str("file", name).Msg("error serving asset")
		writeError(w, err)
	}
}

func (h *staticHandler) serveCatchAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resolution, err := h.build.Resolve(requestedPath(r))
	if err != nil {
		log.Err(err).Msg("error resolving frontend path")
		writeError(w, err)
		return
	}

	log.Debug().Stringer("resolution", resolution.Kind).Str("file", resolution.Path).Send()
	h.recorder.RecordFrontendServe(resolution.Kind.String())

	if err = serveFile(w, r, resolution.Path); err != nil {
		log.Err(err).Str("file", resolution.Path).Msg("error serving frontend file")
		writeError(w, err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}

// serveFile writes the file at name with content type inferred from its
// extension. Open and stat failures are reported as [ErrFileRead] before
// anything is written to w.
func serveFile(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return nil
}

// requestedPath returns the part of the URL matched by the route wildcard.
// chi matches on the escaped path when the URL carries one, in which case the
// wildcard is unescaped here so that "%2e%2e" and "%2f" get normalised like
// their literal forms.
func requestedPath(r *http.Request) string {
	p := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return p
	}

	unescaped, err := url.PathUnescape(p)
	if err != nil {
		return p
	}

	return unescaped
}
