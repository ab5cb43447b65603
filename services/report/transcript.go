package reportsvc

import (
	"bytes"
	"fmt"
	htmltmpl "html/template"
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"github.com/getgradient/gradient/core"
	"github.com/getgradient/gradient/core/session"
	"github.com/getgradient/gradient/core/user"
)

// Service renders a saved gradebook as a shareable transcript.
type Service interface {
	HTML(sess session.Session) ([]byte, error)
	XLSX(sess session.Session) (*bytes.Buffer, error)
	Email(usr user.User, sess session.Session) error
}

type service struct {
	appName string
	mailSvc core.EmailService
}

var _ Service = (*service)(nil)

func NewService(conf *core.Config, mailSvc core.EmailService) Service {
	return &service{appName: conf.AppName, mailSvc: mailSvc}
}

type transcriptData struct {
	AppName     string
	CGPA        string
	Scale       int
	GeneratedAt time.Time
	Semesters   []transcriptSemester
}

type transcriptSemester struct {
	Name    string
	GPA     string
	Courses []transcriptCourse
}

type transcriptCourse struct {
	Code       string
	Name       string
	Credits    float64
	Grade      string
	GradePoint string
}

func (svc *service) data(sess session.Session) transcriptData {
	data := transcriptData{
		AppName:     svc.appName,
		CGPA:        display(sess.CGPA),
		Scale:       sess.Metadata.Scale,
		GeneratedAt: time.Now().UTC(),
	}
	for _, sem := range sess.Semesters {
		ts := transcriptSemester{Name: sem.Name, GPA: display(sem.GPA)}
		for _, c := range sem.Courses {
			grade := c.Grade
			if grade == "" {
				grade = "-"
			}
			ts.Courses = append(ts.Courses, transcriptCourse{
				Code:       c.Code,
				Name:       c.Name,
				Credits:    c.Credits,
				Grade:      grade,
				GradePoint: display(c.GradePoint),
			})
		}
		data.Semesters = append(data.Semesters, ts)
	}
	return data
}

func (svc *service) HTML(sess session.Session) ([]byte, error) {
	var buff bytes.Buffer
	if err := transcriptTmpl.Execute(&buff, svc.data(sess)); err != nil {
		return nil, errors.Wrap(err, "rendering transcript")
	}
	return buff.Bytes(), nil
}

func (svc *service) XLSX(sess session.Session) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transcript"
	f.SetSheetName("Sheet1", sheet)

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	data := svc.data(sess)
	row := 1
	set := func(col string, v interface{}) {
		_ = f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", "Academic Transcript")
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), header)
	row++
	set("A", fmt.Sprintf("Cumulative GPA: %s (%d-point scale)", data.CGPA, data.Scale))
	row += 2

	for _, sem := range data.Semesters {
		set("A", sem.Name)
		set("B", "GPA: "+sem.GPA)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
		row++

		for i, title := range []string{"Course Code", "Course Name", "Credits", "Grade", "Grade Point"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, title)
		}
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), header)
		row++

		for _, c := range sem.Courses {
			set("A", c.Code)
			set("B", c.Name)
			set("C", c.Credits)
			set("D", c.Grade)
			set("E", c.GradePoint)
			row++
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "E", 12)

	buff, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return buff, nil
}

// Email sends the user their transcript as an XLSX attachment.
func (svc *service) Email(usr user.User, sess session.Session) error {
	buff, err := svc.XLSX(sess)
	if err != nil {
		return err
	}

	msg := &core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Your Academic Transcript",
		BodyStr: fmt.Sprintf("Hi %s,\n\nPlease find your transcript attached.\n\nCumulative GPA: %s", usr.Name, display(sess.CGPA)),
	}
	ct := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if err = msg.Attach(buff, "transcript.xlsx", ct); err != nil {
		return errors.Wrap(err, "attaching transcript")
	}

	svc.mailSvc.SendMessages(msg)
	return nil
}

func display(v null.Float64) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v.Float64)
}

var transcriptTmpl = htmltmpl.Must(htmltmpl.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Academic Transcript</title>
<style>
@page { size: A4; margin: 2cm; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; font-size: 11pt; line-height: 1.6; color: #333; }
.header { text-align: center; margin-bottom: 2em; padding-bottom: 1em; border-bottom: 3px solid #2563eb; }
.header h1 { font-size: 24pt; color: #1e40af; margin-bottom: 0.5em; }
.cgpa-display { font-size: 18pt; color: #059669; font-weight: bold; margin: 1em 0; }
.metadata { display: flex; justify-content: space-between; margin-bottom: 2em; font-size: 10pt; color: #666; }
.semester-section { margin-bottom: 2em; page-break-inside: avoid; }
.semester-section h2 { font-size: 16pt; color: #1e40af; border-bottom: 2px solid #93c5fd; }
.semester-gpa { font-size: 12pt; color: #059669; margin-bottom: 1em; }
.courses-table { width: 100%; border-collapse: collapse; margin-bottom: 1em; }
.courses-table thead { background-color: #dbeafe; }
.courses-table th, .courses-table td { padding: 0.5em; text-align: left; border: 1px solid #bfdbfe; }
.courses-table th { font-weight: 600; color: #1e40af; }
.text-center { text-align: center; }
.footer { margin-top: 3em; padding-top: 1em; border-top: 1px solid #e5e7eb; text-align: center; font-size: 9pt; color: #6b7280; }
</style>
</head>
<body>
<div class="header">
<h1>Academic Transcript</h1>
<p class="cgpa-display">Cumulative GPA: {{.CGPA}}</p>
</div>
<div class="metadata">
<div>Grading Scale: {{.Scale}}-Point</div>
<div>Generated: {{.GeneratedAt.Format "January 02, 2006"}}</div>
</div>
{{range .Semesters}}
<div class="semester-section">
<h2>{{.Name}}</h2>
<p class="semester-gpa">Semester GPA: <strong>{{.GPA}}</strong></p>
<table class="courses-table">
<thead>
<tr><th>Course Code</th><th>Course Name</th><th>Credits</th><th>Grade</th><th>Grade Point</th></tr>
</thead>
<tbody>
{{range .Courses}}
<tr>
<td>{{.Code}}</td>
<td>{{.Name}}</td>
<td class="text-center">{{.Credits}}</td>
<td class="text-center">{{.Grade}}</td>
<td class="text-center">{{.GradePoint}}</td>
</tr>
{{end}}
</tbody>
</table>
</div>
{{end}}
<div class="footer">
<p>This is a computer-generated transcript from {{.AppName}}</p>
<p>Generated on {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
</div>
</body>
</html>
`))
