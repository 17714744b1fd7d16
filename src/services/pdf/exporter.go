// Package pdf turns the print view of a plan into a downloadable PDF.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math"
	"sync"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"
)

// EventExport is the telemetry event name of every export attempt.
const EventExport = "pdf_export"

// PrintRootSelector wraps everything the print view puts on paper.
const PrintRootSelector = "#print-doc"

var (
	ErrExportInProgress = errors.New("pdf: an export is already running")
	ErrEmptyDocument    = errors.New("pdf: renderer returned no data")
)

// PageFormat describes the paper in inches. Content is laid out at 96 CSS
// pixels per inch.
type PageFormat struct {
	WidthIn, HeightIn        float64
	MarginTopIn, MarginBotIn float64
	MarginSideIn             float64
}

// A4 leaves a deeper bottom margin for the footer line.
var A4 = PageFormat{WidthIn: 8.27, HeightIn: 11.69, MarginTopIn: 0.5, MarginBotIn: 0.75, MarginSideIn: 0.5}

const cssPxPerInch = 96

// PrintableHeightPx is the content height one page holds.
func (f PageFormat) PrintableHeightPx() float64 {
	return (f.HeightIn - f.MarginTopIn - f.MarginBotIn) * cssPxPerInch
}

// PrintableWidthPx is the layout width used when measuring content.
func (f PageFormat) PrintableWidthPx() int64 {
	return int64((f.WidthIn - 2*f.MarginSideIn) * cssPxPerInch)
}

// PageCount is the number of pages contentHeight px of content fills.
func PageCount(contentHeightPx float64, f PageFormat) int {
	if contentHeightPx <= 0 {
		return 1
	}
	return int(math.Ceil(contentHeightPx / f.PrintableHeightPx()))
}

// Document is what a Rasterizer produces.
type Document struct {
	Data            []byte
	ContentHeightPx float64
}

// RenderOptions are passed through to the rasterizer.
type RenderOptions struct {
	Format     PageFormat
	FooterHTML string
	// Selector is the element whose height decides the page count.
	Selector string
}

// Rasterizer renders an HTML document to PDF bytes.
type Rasterizer interface {
	Render(ctx context.Context, html string, opts RenderOptions) (Document, error)
}

// Tracker receives telemetry.
type Tracker interface {
	Track(ctx context.Context, name string, params interface{})
}

// Result is a finished export.
type Result struct {
	FileName  string
	Data      []byte
	PageCount int
}

type Exporter struct {
	raster     Rasterizer
	tracker    Tracker
	format     PageFormat
	siteURL    string
	disclaimer string

	mu     sync.Mutex
	active map[string]struct{}
}

func NewExporter(r Rasterizer, t Tracker, siteURL, disclaimer string) *Exporter {
	return &Exporter{
		raster:     r,
		tracker:    t,
		format:     A4,
		siteURL:    siteURL,
		disclaimer: disclaimer,
		active:     map[string]struct{}{},
	}
}

// FileName is the download name for a plan.
func FileName(p models.Plan) string {
	return "brightlane-" + catalog.SlugFor(p.Key) + "-7-day-ai-plan.pdf"
}

// Export renders html, the print view of plan, for the visitor identified
// by guardKey. One export per guardKey runs at a time. Every attempt past
// the guard is reported to the tracker, failed ones included.
func (e *Exporter) Export(ctx context.Context, guardKey string, plan models.Plan, html string) (*Result, error) {
	if !e.acquire(guardKey) {
		return nil, ErrExportInProgress
	}
	defer e.release(guardKey)

	name := FileName(plan)
	doc, err := e.render(ctx, html)
	if err == nil && len(doc.Data) == 0 {
		err = ErrEmptyDocument
	}
	if err != nil {
		msg := err.Error()
		e.tracker.Track(ctx, EventExport, models.PDFExportEvent{
			FileName:          name,
			PlanKey:           plan.Key,
			DownloadCompleted: false,
			ErrorMessage:      &msg,
		})
		log.Printf("❌ [pdf] export %s failed: %v", plan.Key, err)
		return nil, fmt.Errorf("export %s: %w", plan.Key, err)
	}

	res := &Result{FileName: name, Data: doc.Data, PageCount: PageCount(doc.ContentHeightPx, e.format)}
	e.tracker.Track(ctx, EventExport, models.PDFExportEvent{
		FileName:          name,
		FileSizeBytes:     len(doc.Data),
		PageCount:         res.PageCount,
		PlanKey:           plan.Key,
		DownloadCompleted: true,
	})
	log.Printf("✅ [pdf] exported %s (%d pages, %d bytes)", name, res.PageCount, len(doc.Data))
	return res, nil
}

func (e *Exporter) render(ctx context.Context, html string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()
	footer, err := e.footerHTML()
	if err != nil {
		return Document{}, err
	}
	return e.raster.Render(ctx, html, RenderOptions{Format: e.format, FooterHTML: footer, Selector: PrintRootSelector})
}

func (e *Exporter) acquire(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.active[key]; busy {
		return false
	}
	e.active[key] = struct{}{}
	return true
}

func (e *Exporter) release(key string) {
	e.mu.Lock()
	delete(e.active, key)
	e.mu.Unlock()
}

// Chrome fills pageNumber and totalPages inside the footer template.
var footerTmpl = template.Must(template.New("footer").Parse(
	`<div style="font-size:8px;width:100%;padding:0 0.5in;color:#666;display:flex;justify-content:space-between;">` +
		`<span>{{.SiteURL}} · {{.Disclaimer}}</span>` +
		`<span>Page <span class="pageNumber"></span> of <span class="totalPages"></span></span></div>`))

func (e *Exporter) footerHTML() (string, error) {
	var buf bytes.Buffer
	err := footerTmpl.Execute(&buf, struct{ SiteURL, Disclaimer string }{e.siteURL, e.disclaimer})
	return buf.String(), err
}
