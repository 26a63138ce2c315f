package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/report"
)

const serveShutdownTimeout = 5 * time.Second

type serveFlags struct {
	addr string
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}
	checkFl := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive paste-and-check form",
		Long: `Start a small local web server with a paste-and-check form.

Pasted content is checked with no filename, so findings carry line-only
locations. Results render as HTML or, with Accept: application/json, as
the same JSON envelope the CLI emits.

Examples:
  docstyle serve                    # Listen on localhost:8420
  docstyle serve --addr :9000       # Listen on all interfaces, port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags, checkFl)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "localhost:8420", "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags, checkFl *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.FromContext(ctx)

	cfg, _, err := loadConfig(ctx, cmd, checkFl, logger)
	if err != nil {
		return err
	}

	handler := &pasteHandler{
		engine: check.NewEngine(check.DefaultRegistry),
		cfg:    cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.serveForm)
	mux.HandleFunc("/check", handler.serveCheck)

	server := &http.Server{
		Addr:              flags.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("paste-and-check server listening", logging.FieldAddr, flags.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return &ExitError{Code: ExitInternalError, Err: fmt.Errorf("shutdown: %w", err)}
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &ExitError{Code: ExitIOError, Err: err}
	}
}

// pasteHandler checks pasted content against the resolved configuration.
type pasteHandler struct {
	engine *check.Engine
	cfg    *config.Config
}

//nolint:gochecknoglobals // Parsed once, read-only afterwards.
var pastePage = template.Must(template.New("paste").Parse(`<!DOCTYPE html>
<html>
<head><title>docstyle</title></head>
<body>
<h1>docstyle</h1>
<form method="POST" action="/check">
<p><textarea name="content" rows="24" cols="100" placeholder="Paste documentation content here">{{.Content}}</textarea></p>
<p><button type="submit">Check</button></p>
</form>
{{if .Checked}}
<h2>Findings ({{len .Findings}})</h2>
{{if .Findings}}
<table border="1" cellpadding="4">
<tr><th>Line</th><th>Severity</th><th>Rule</th><th>Message</th><th>Suggestion</th></tr>
{{range .Findings}}
<tr><td>{{.Line}}</td><td>{{.Severity}}</td><td>{{.RuleID}}</td><td>{{.Message}}</td><td>{{.Suggestion}}</td></tr>
{{end}}
</table>
{{else}}
<p>No findings.</p>
{{end}}
{{end}}
</body>
</html>
`))

type pastePageData struct {
	Content  string
	Checked  bool
	Findings []check.Finding
}

func (h *pasteHandler) serveForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pastePage.Execute(w, pastePageData{}); err != nil {
		logging.FromContext(r.Context()).Error("render form", logging.FieldError, err)
	}
}

func (h *pasteHandler) serveCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	content := r.PostFormValue("content")

	// Pasted content has no filename; locations degrade to line-only.
	fr, err := h.engine.CheckDocument(r.Context(), "", []byte(content), h.cfg)
	if err != nil {
		http.Error(w, "check failed", http.StatusInternalServerError)
		return
	}

	rep := report.Build([]report.FileFindings{{Findings: fr.Findings}}, h.cfg)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		renderer, err := report.NewRenderer(report.Options{Writer: w, Format: config.FormatJSON})
		if err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		if err := renderer.Render(rep); err != nil {
			logging.FromContext(r.Context()).Error("render json", logging.FieldError, err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pastePageData{Content: content, Checked: true, Findings: rep.Findings}
	if err := pastePage.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Error("render results", logging.FieldError, err)
	}
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept == "application/json" || r.PostFormValue("format") == "json"
}
