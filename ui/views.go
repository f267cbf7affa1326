package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/kokumai1113/task-app/core"
)

// htmlWriter latches the first write error so components can emit
// markup without checking every call
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) write(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) writef(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

// pageStyle is the shared stylesheet: dark panels with a blue accent
const pageStyle = `
@import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap');
html, body { font-family: 'Inter', sans-serif; color: #E0E0E0; background-color: #121212; margin: 0; }
.container { max-width: 700px; margin: 0 auto; padding: 2rem 1rem 3rem; }
h1 { font-weight: 700; text-align: center; margin-bottom: 2rem;
     background: linear-gradient(45deg, #00C6FF, #0072FF);
     -webkit-background-clip: text; background-clip: text; color: transparent; }
h2 { color: #FFFFFF; font-weight: 600; }
nav { display: flex; justify-content: center; gap: 1.5rem; padding: 1rem 0; }
nav a { color: #B0B0B0; text-decoration: none; font-weight: 600; }
nav a.active, nav a:hover { color: #FFFFFF; }
.card { background-color: #1E1E1E; padding: 1.25rem; border-radius: 12px;
        border: 1px solid #333333; margin-bottom: 1rem; }
.form-card { padding: 2rem; border-radius: 16px; }
.form-row { display: flex; gap: 1rem; }
.form-row > div { flex: 1; }
label { display: block; color: #B0B0B0; font-size: 0.9em; margin: 0.75rem 0 0.25rem; }
input, select { width: 100%; box-sizing: border-box; background-color: #121212; color: #FFFFFF;
                border: 1px solid #333333; border-radius: 10px; padding: 0.6rem; }
input:focus, select:focus { outline: none; border-color: #0072FF; }
button { width: 100%; margin-top: 1.25rem; border-radius: 10px; padding: 0.9rem; font-weight: 700;
         background: linear-gradient(135deg, #00C6FF 0%, #0072FF 100%); border: none; color: white;
         cursor: pointer; }
button:hover { filter: brightness(1.1); }
table { width: 100%; border-collapse: collapse; }
th { text-align: left; color: #B0B0B0; font-size: 0.85em; padding: 0.5rem; border-bottom: 1px solid #333333; }
td { padding: 0.5rem; border-bottom: 1px solid #262626; }
.task-title { font-weight: 600; font-size: 1.1em; }
.task-meta { color: #aaa; font-size: 0.9em; margin: 0.25rem 0 0.75rem; }
.status-form { display: flex; gap: 0.5rem; }
.status-form select { flex: 1; }
.status-form button { width: auto; margin: 0; padding: 0.6rem 1.25rem; }
.flash { border-radius: 10px; padding: 0.75rem 1rem; margin-bottom: 1rem;
         background-color: #12331F; border: 1px solid #1F6B3A; color: #7EE2A8; }
.flash.error { background-color: #33121A; border-color: #6B1F2E; color: #E27E92; }
.count { color: #B0B0B0; }
.empty { color: #B0B0B0; text-align: center; padding: 2rem 0; }
`

// Layout wraps page content in the shared HTML shell
func Layout(title, active string, flash Flash, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.write(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.write(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.writef(`<title>%s</title>`, templ.EscapeString(title))
		hw.write(`<style>`)
		hw.write(pageStyle)
		hw.write(`</style></head><body>`)
		if hw.err != nil {
			return hw.err
		}
		if err := navBar(active).Render(ctx, w); err != nil {
			return err
		}
		hw.write(`<div class="container">`)
		if flash.Message != "" {
			class := "flash"
			if flash.IsError {
				class = "flash error"
			}
			hw.writef(`<div class="%s">%s</div>`, class, templ.EscapeString(flash.Message))
		}
		if hw.err != nil {
			return hw.err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		hw.write(`</div></body></html>`)
		return hw.err
	})
}

func navBar(active string) templ.Component {
	links := []struct {
		href  string
		label string
	}{
		{"/", "✅ Tasks"},
		{"/daily", "📅 Daily"},
		{"/workouts", "💪 Workouts"},
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.write(`<nav>`)
		for _, link := range links {
			class := ""
			if link.href == active {
				class = ` class="active"`
			}
			hw.writef(`<a href="%s"%s>%s</a>`, link.href, class, link.label)
		}
		hw.write(`</nav>`)
		return hw.err
	})
}

// TaskPage renders the task entry form and the recent task history
func TaskPage(projects []core.Option, tasks []core.TaskRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.write(`<h1>✅ Task App</h1>`)

		hw.write(`<div class="card form-card"><h2>New Task</h2>`)
		hw.write(`<form method="post" action="/tasks">`)
		hw.write(`<label>Task Name</label>`)
		hw.write(`<input type="text" name="name" placeholder="What gets done today?" required>`)
		hw.write(`<div class="form-row">`)
		hw.write(`<div><label>Date</label><input type="date" name="date"></div>`)
		hw.write(`<div><label>Project</label><select name="project">`)
		hw.write(`<option value="">(No Project)</option>`)
		for _, p := range projects {
			hw.writef(`<option value="%s">%s</option>`,
				templ.EscapeString(p.ID), templ.EscapeString(p.Name))
		}
		hw.write(`</select></div></div>`)
		hw.write(`<button type="submit">Save Task</button>`)
		hw.write(`</form></div>`)

		hw.write(`<h2>Recent Tasks</h2>`)
		if len(tasks) == 0 {
			hw.write(`<p class="empty">No tasks found.</p>`)
			return hw.err
		}
		hw.write(`<table><thead><tr><th>Task</th><th>Date</th><th>Project</th><th>Status</th></tr></thead><tbody>`)
		for _, row := range tasks {
			hw.writef(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.Task),
				templ.EscapeString(row.Date),
				templ.EscapeString(row.Project),
				templ.EscapeString(row.Status))
		}
		hw.write(`</tbody></table>`)
		return hw.err
	})
}

// DailyPage renders the board of today's actionable tasks as cards with
// an inline status updater
func DailyPage(rows []core.TaskRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.write(`<h1>📅 Daily Tasks</h1>`)
		if len(rows) == 0 {
			hw.write(`<p class="empty">No tasks for today! 🎉</p>`)
			return hw.err
		}

		hw.writef(`<p class="count">Incomplete tasks for today: %d</p>`, len(rows))
		for _, row := range rows {
			hw.write(`<div class="card">`)
			hw.writef(`<div class="task-title">%s</div>`, templ.EscapeString(row.Task))
			hw.writef(`<div class="task-meta">📅 %s | 📂 %s</div>`,
				templ.EscapeString(displayDate(row.Date)), templ.EscapeString(row.Project))
			hw.write(`<form method="post" action="/tasks/status" class="status-form">`)
			hw.writef(`<input type="hidden" name="id" value="%s">`, templ.EscapeString(row.ID))
			hw.write(`<input type="hidden" name="return" value="/daily">`)
			hw.write(`<select name="status">`)
			for _, choice := range statusChoices(row.Status) {
				hw.writef(`<option value="%s">%s</option>`,
					templ.EscapeString(choice), templ.EscapeString(choice))
			}
			hw.write(`</select>`)
			hw.write(`<button type="submit">Update</button>`)
			hw.write(`</form></div>`)
		}
		return hw.err
	})
}

// WorkoutPage renders the workout entry form and the set history
func WorkoutPage(exercises []core.Option, workouts []core.WorkoutRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.write(`<h1>💪 Workout Log</h1>`)

		hw.write(`<div class="card form-card"><h2>New Set</h2>`)
		hw.write(`<form method="post" action="/workouts">`)
		hw.write(`<label>Exercise</label>`)
		hw.write(`<select name="exercise" required>`)
		hw.write(`<option value="">Select an exercise</option>`)
		for _, e := range exercises {
			hw.writef(`<option value="%s">%s</option>`,
				templ.EscapeString(e.ID), templ.EscapeString(e.Name))
		}
		hw.write(`</select>`)
		hw.write(`<div class="form-row">`)
		hw.write(`<div><label>Weight (kg)</label><input type="number" name="weight" step="0.5" min="0" required></div>`)
		hw.write(`<div><label>Reps</label><input type="number" name="reps" min="1" required></div>`)
		hw.write(`<div><label>Sets</label><input type="number" name="sets" min="0"></div>`)
		hw.write(`</div>`)
		hw.write(`<label>Date</label><input type="date" name="date">`)
		hw.write(`<button type="submit">Save Workout</button>`)
		hw.write(`</form></div>`)

		hw.write(`<h2>History</h2>`)
		if len(workouts) == 0 {
			hw.write(`<p class="empty">No workouts logged yet.</p>`)
			return hw.err
		}
		hw.write(`<table><thead><tr><th>Date</th><th>Exercise</th><th>Weight</th><th>Reps</th><th>Sets</th></tr></thead><tbody>`)
		for _, row := range workouts {
			hw.writef(`<tr><td>%s</td><td>%s</td><td>%g</td><td>%d</td><td>%d</td></tr>`,
				templ.EscapeString(row.Date),
				templ.EscapeString(row.Exercise),
				row.Weight, row.Reps, row.Sets)
		}
		hw.write(`</tbody></table>`)
		return hw.err
	})
}

// statusChoices lists the selectable status labels with the row's
// current label first, so an untouched select round-trips harmlessly
func statusChoices(current string) []string {
	choices := []string{}
	if current != "" {
		choices = append(choices, current)
	}
	for _, s := range core.StatusChoices() {
		if label := s.WriteLabel(); label != current {
			choices = append(choices, label)
		}
	}
	return choices
}

func displayDate(date string) string {
	if date == "" {
		return "-"
	}
	return date
}
