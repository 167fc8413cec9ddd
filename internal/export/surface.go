package export

import (
	"io"

	"github.com/phpdave11/gofpdf"
)

// Surface is the narrow rendering capability the PDF report is drawn
// against: pages, fonts, colors, filled rectangles and positioned text. The
// report layout never touches the PDF library directly, so the library is
// swappable behind this interface.
type Surface interface {
	AddPage()
	PageSize() (w, h float64)

	SetFont(style string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetAlpha(alpha float64)

	FillRect(x, y, w, h float64)
	Text(x, y float64, s string)
	// RotatedText draws s rotated counterclockwise by angle degrees around
	// (x, y). Used for the page watermark.
	RotatedText(x, y float64, s string, angle float64)

	Output(w io.Writer) error
}

// pdfSurface implements Surface on gofpdf, A4 portrait in millimeters.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
}

func newPDFSurface(title string) *pdfSurface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, 0)
	return &pdfSurface{pdf: pdf}
}

func (s *pdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *pdfSurface) PageSize() (float64, float64) {
	w, h := s.pdf.GetPageSize()
	return w, h
}

func (s *pdfSurface) SetFont(style string, size float64) {
	s.pdf.SetFont("Helvetica", style, size)
}

func (s *pdfSurface) SetTextColor(r, g, b int) {
	s.pdf.SetTextColor(r, g, b)
}

func (s *pdfSurface) SetFillColor(r, g, b int) {
	s.pdf.SetFillColor(r, g, b)
}

func (s *pdfSurface) SetAlpha(alpha float64) {
	s.pdf.SetAlpha(alpha, "Normal")
}

func (s *pdfSurface) FillRect(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *pdfSurface) Text(x, y float64, str string) {
	s.pdf.Text(x, y, str)
}

func (s *pdfSurface) RotatedText(x, y float64, str string, angle float64) {
	s.pdf.TransformBegin()
	s.pdf.TransformRotate(angle, x, y)
	s.pdf.Text(x, y, str)
	s.pdf.TransformEnd()
}

func (s *pdfSurface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
