package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/felixbrock/vidcaption/internal/domain"
)

var stateLabels = map[string]string{
	domain.JobPending:      "Waiting for a free worker...",
	domain.JobExtracting:   "Extracting audio...",
	domain.JobTranscribing: "Transcribing speech...",
	domain.JobSubtitling:   "Writing subtitles...",
	domain.JobRendering:    "Adding subtitles to your video...",
	domain.JobCompleted:    "Your captions are ready.",
	domain.JobFailed:       "Captioning failed.",
}

func JobPath(id string) string {
	return fmt.Sprintf("/jobs/%s", id)
}

// JobStatus renders the job panel. While the job is running the panel
// replaces itself every two seconds with a fresh copy from the status route.
func JobStatus(job domain.Job) g.Node {
	label, ok := stateLabels[job.State]
	if !ok {
		label = job.State
	}

	return Div(
		ID("job-status"),
		Class("flex flex-col gap-4"),
		g.Attr("data-job-status", job.State),
		g.If(!job.Done(), g.Group([]g.Node{
			g.Attr("hx-get", JobPath(job.Id)+"/status"),
			g.Attr("hx-trigger", "every 2s"),
			g.Attr("hx-swap", "outerHTML"),
		})),
		H1(Class("font-bold text-[24px]"), g.Text(job.VideoName)),
		P(g.Attr("data-job-state-label", ""), g.Text(label)),
		g.If(job.State == domain.JobFailed && job.Error != "",
			P(Class("text-tiktok-red"), g.Attr("data-job-error", ""), g.Text(job.Error)),
		),
		g.If(job.State == domain.JobCompleted, Div(
			Class("flex gap-4"),
			A(Href(JobPath(job.Id)+"/video"), Class("btn"), g.Attr("data-download-video", ""), g.Text("Download video")),
			A(Href(JobPath(job.Id)+"/subtitles"), Class("btn"), g.Attr("data-download-subtitles", ""), g.Text("Download subtitles")),
		)),
		g.If(job.Done(), A(Href(UploadPath), Class("underline"), g.Text("Caption another video"))),
	)
}

func JobPage(job domain.Job) g.Node {
	return Div(
		Class("flex flex-col items-center px-8 py-12"),
		Div(Class("w-full max-w-[640px]"), JobStatus(job)),
	)
}
