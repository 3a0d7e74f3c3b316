package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"

	config "github.com/polyglotlc/backend/configs"
	"github.com/polyglotlc/backend/models"
)

const certificateNumberPrefix = "PLC"

// maxCertificateSequence bounds the zero-padded suffix; allocation fails
// closed once a year's sequence is exhausted.
const maxCertificateSequence = 9999

var ErrCertificateSequenceExhausted = errors.New("certificate sequence exhausted for the year")

// NextCertificateNumber computes the next PLC-<year>-<NNNN> number. The
// highest existing number for the year is found lexicographically, which
// matches numeric order while the suffix stays 4 digits wide. The read and
// the subsequent insert are not atomic: a concurrent allocation can yield
// the same number, and the unique constraint on certificate_number turns
// that into a creation conflict the caller retries.
func NextCertificateNumber(db *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", certificateNumberPrefix, year)

	var last models.Certificate
	err := db.Where("certificate_number LIKE ?", prefix+"%").
		Order("certificate_number DESC").
		First(&last).Error

	seq := 1
	if err == nil {
		seq = parseCertificateSequence(last.CertificateNumber) + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if seq > maxCertificateSequence {
		return "", ErrCertificateSequenceExhausted
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// parseCertificateSequence extracts the trailing numeric component after the
// final dash. Any parse failure restarts the sequence at 1.
func parseCertificateSequence(number string) int {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0
	}
	n, err := strconv.Atoi(number[idx+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// GenerateCertificateImage renders the issued-certificate template to PDF
// and stores it through Cloudinary, returning the hosted URL.
func GenerateCertificateImage(cert models.Certificate) (string, error) {
	courseTitle := ""
	if cert.Course != nil {
		courseTitle = cert.Course.Title
	}
	teacherName := ""
	if cert.Teacher != nil {
		teacherName = cert.Teacher.FullName()
	}

	htmlData, err := renderCertificateHTML(cert.StudentName, teacherName, courseTitle, cert.CertificateNumber, cert.Score, cert.IssueDate)
	if err != nil {
		return "", err
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return "", err
	}

	return uploadCertificate(pdfBytes, cert.CertificateNumber)
}

func renderCertificateHTML(studentName, teacherName, courseTitle, number, score string, issueDate time.Time) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName       string
		TeacherName       string
		CourseTitle       string
		CertificateNumber string
		Score             string
		IssueDate         string
	}{
		StudentName:       studentName,
		TeacherName:       teacherName,
		CourseTitle:       courseTitle,
		CertificateNumber: number,
		Score:             score,
		IssueDate:         issueDate.Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, certificateNumber string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s", certificateNumber),
		Folder:       "polyglotlc_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
