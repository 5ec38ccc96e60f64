// Package export renders admin CSV downloads. Every row has the same
// columns as the fixed header; string fields are always double-quoted.
package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

const dateLayout = "2006-01-02"

var (
	UserHeader    = []string{"ID", "Name", "Email", "Phone", "Age", "Fitness Goals", "Created At"}
	InquiryHeader = []string{"ID", "Name", "Email", "Phone", "Message", "Plan Type", "Created At"}
	ReviewHeader  = []string{"ID", "User Name", "Rating", "Message", "Created At"}
)

func WriteUsers(w io.Writer, users []models.User) error {
	cw := newWriter(w, UserHeader)
	for _, u := range users {
		cw.row(
			id(u.ID),
			quote(u.Name),
			quote(u.Email),
			quote(u.Phone),
			strconv.Itoa(u.Age),
			quote(u.Goal),
			date(u.CreatedAt),
		)
	}
	return cw.flush()
}

func WriteInquiries(w io.Writer, inquiries []models.MembershipInquiry) error {
	cw := newWriter(w, InquiryHeader)
	for _, inq := range inquiries {
		cw.row(
			id(inq.ID),
			quote(inq.Name),
			quote(inq.Email),
			quote(inq.Phone),
			quote(deref(inq.Message)),
			quote(deref(inq.PlanType)),
			date(inq.CreatedAt),
		)
	}
	return cw.flush()
}

func WriteReviews(w io.Writer, reviews []models.ReviewWithUser) error {
	cw := newWriter(w, ReviewHeader)
	for _, r := range reviews {
		cw.row(
			id(r.ID),
			quote(r.UserName),
			strconv.Itoa(r.Rating),
			quote(r.Message),
			date(r.CreatedAt),
		)
	}
	return cw.flush()
}

type writer struct {
	bw  *bufio.Writer
	err error
}

func newWriter(w io.Writer, header []string) *writer {
	cw := &writer{bw: bufio.NewWriter(w)}
	cw.line(strings.Join(header, ","))
	return cw
}

func (cw *writer) row(fields ...string) {
	cw.line("\n" + strings.Join(fields, ","))
}

func (cw *writer) line(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = cw.bw.WriteString(s)
}

func (cw *writer) flush() error {
	if cw.err != nil {
		return cw.err
	}
	return cw.bw.Flush()
}

// quote wraps s in double quotes, doubling any embedded quote (RFC 4180).
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
