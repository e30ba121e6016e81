package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/deckanalyzer/internal/analysis"
	"github.com/youruser/deckanalyzer/internal/config"
	"github.com/youruser/deckanalyzer/internal/deck"
	imagepkg "github.com/youruser/deckanalyzer/internal/image"
	"github.com/youruser/deckanalyzer/internal/report"
	"github.com/youruser/deckanalyzer/internal/util"
)

// uploadField is the multipart field carrying decklist files.
const uploadField = "files"

// partOverhead is the room allowed per file for multipart headers and
// boundaries on top of MaxFileBytes.
const partOverhead = 1 << 10

type Handler struct {
	log    *zap.Logger
	limits config.Limits
}

func NewHandler(log *zap.Logger, limits config.Limits) *Handler {
	return &Handler{log: log, limits: limits}
}

type failureView struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error"`
}

func newFailureView(f *analysis.FileError) failureView {
	v := failureView{File: f.File, Error: f.Error()}
	var perr *deck.ParseError
	if errors.As(f.Err, &perr) {
		v.Line = perr.Line
		v.Reason = perr.Reason.String()
		v.Content = perr.Content
	}
	return v
}

func failureViews(fs []*analysis.FileError) []failureView {
	out := make([]failureView, 0, len(fs))
	for _, f := range fs {
		out = append(out, newFailureView(f))
	}
	return out
}

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyze returns the report document as JSON together with any files
// that failed to parse.
func (h *Handler) analyze(c *gin.Context) {
	res, ok := h.loadBatch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"decks":    res.DeckCount,
		"files":    res.Files,
		"report":   report.FromResult(res),
		"failures": failureViews(res.Failures),
	})
}

// export returns the report as a downloadable file; format selects
// text (default), json or yaml.
func (h *Handler) export(c *gin.Context) {
	enc, err := report.ParseEncoding(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := h.loadBatch(c)
	if !ok {
		return
	}
	buf := new(bytes.Buffer)
	if err := report.Encode(buf, report.FromResult(res), enc); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", enc.FileName()))
	c.Header("X-Deck-Count", strconv.Itoa(res.DeckCount))
	c.Data(http.StatusOK, enc.ContentType(), buf.Bytes())
}

// qr returns a PNG whose QR code holds the cards common to every main deck.
func (h *Handler) qr(c *gin.Context) {
	size := h.limits.QRSize
	if s := c.Query("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
			return
		}
		size = v
	}
	res, ok := h.loadBatch(c)
	if !ok {
		return
	}
	b, err := imagepkg.DeckQRPNG(res.CommonMain, size)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// loadBatch reads the uploaded files in upload order and analyses them.
// It writes the error response itself and reports false on failure.
func (h *Handler) loadBatch(c *gin.Context) (*analysis.Result, bool) {
	if limit := h.bodyLimit(); limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
	form, err := c.MultipartForm()
	if err != nil {
		_ = c.Error(err)
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("request body too large (limit %d bytes)", tooBig.Limit)})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form: " + err.Error()})
		return nil, false
	}
	files := form.File[uploadField]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return nil, false
	}
	if h.limits.MaxFiles > 0 && len(files) > h.limits.MaxFiles {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("at most %d files per batch", h.limits.MaxFiles)})
		return nil, false
	}

	inputs := make([]util.Opener, 0, len(files))
	for _, fh := range files {
		inputs = append(inputs, util.Opener{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	texts, err := util.ReadAll(c.Request.Context(), inputs, h.limits.ReadConcurrency, h.limits.MaxFileBytes)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, util.ErrTooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, util.ErrNotUTF8):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}

	sources := make([]analysis.Source, 0, len(texts))
	for _, t := range texts {
		sources = append(sources, analysis.Source{Name: t.Name, Text: t.Body})
	}
	strict, _ := strconv.ParseBool(c.Query("strict"))
	res, err := analysis.Analyze(sources, analysis.Options{Strict: strict})
	if err != nil {
		_ = c.Error(err)
		var ferr *analysis.FileError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "failures": failureViews([]*analysis.FileError{ferr})})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	for _, f := range res.Failures {
		h.log.Warn("skipping decklist", zap.String("file", f.File), zap.Error(f.Err))
	}
	h.log.Debug("analysed batch", zap.Int("decks", res.DeckCount), zap.Int("failures", len(res.Failures)))
	return res, true
}

// bodyLimit is the largest request body a full batch can need.
func (h *Handler) bodyLimit() int64 {
	if h.limits.MaxFiles <= 0 || h.limits.MaxFileBytes <= 0 {
		return 0
	}
	return int64(h.limits.MaxFiles) * (h.limits.MaxFileBytes + partOverhead)
}
