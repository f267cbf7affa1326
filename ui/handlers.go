package ui

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/kokumai1113/task-app/config"
	"github.com/kokumai1113/task-app/core"
	"github.com/kokumai1113/task-app/middleware/auth"
)

// Handler returns an HTTP handler for the task board. The health probe
// stays outside basic auth.
func Handler(adapter core.Adapter, authCfg *config.AuthConfig) http.Handler {
	handler := &TaskBoardHandler{adapter: adapter, now: time.Now}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.homeHandler)
	mux.HandleFunc("/tasks", handler.createTaskHandler)
	mux.HandleFunc("/tasks/status", handler.updateStatusHandler)
	mux.HandleFunc("/daily", handler.dailyHandler)
	mux.HandleFunc("/workouts", handler.workoutsHandler)
	mux.HandleFunc("/healthz", handler.healthHandler)

	return auth.Middleware(authCfg, "/healthz")(mux)
}

// TaskBoardHandler wraps the adapter to provide HTTP handler methods
type TaskBoardHandler struct {
	adapter core.Adapter
	now     func() time.Time
}

// homeHandler serves the task entry page with the recent history
func (h *TaskBoardHandler) homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flash := flashFromRequest(r)

	projects, err := h.adapter.ListProjects(r.Context())
	if err != nil {
		log.Printf("[ui] loading projects: %v", err)
		if flash.Message == "" {
			flash = Flash{Message: "Projects could not be loaded; new tasks go in without one.", IsError: true}
		}
	}

	tasks, err := h.adapter.ListTasks(r.Context(), core.DefaultPageSize, core.OptionsToLookup(projects))
	if err != nil {
		h.writeHTTPError(w, fmt.Sprintf("Failed to load tasks: %v", err), http.StatusInternalServerError)
		return
	}

	h.render(w, r, Layout("Task App", "/", flash, TaskPage(projects, tasks)))
}

// createTaskHandler handles the task form submission
func (h *TaskBoardHandler) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeHTTPError(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.redirect(w, r, NewPageURL("/").WithError("Task name is required").String())
		return
	}

	var due time.Time
	if raw := r.FormValue("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.redirect(w, r, NewPageURL("/").WithError("Date must look like 2006-01-02").String())
			return
		}
		due = parsed
	}

	if err := h.adapter.AddTask(r.Context(), name, due, r.FormValue("project")); err != nil {
		log.Printf("[ui] adding task: %v", err)
		h.redirect(w, r, NewPageURL("/").WithError("Saving the task failed. Check the logs.").String())
		return
	}

	h.redirect(w, r, NewPageURL("/").WithFlash("Successfully added: "+name).String())
}

// updateStatusHandler moves a task to the submitted status
func (h *TaskBoardHandler) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeHTTPError(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	returnPath := sanitizeReturnPath(r.FormValue("return"))

	id := r.FormValue("id")
	if id == "" {
		h.redirect(w, r, NewPageURL(returnPath).WithError("Task id is required").String())
		return
	}

	status := core.ParseStatus(r.FormValue("status"))
	if status == core.StatusUnknown {
		h.redirect(w, r, NewPageURL(returnPath).WithError("Unrecognized status").String())
		return
	}

	if err := h.adapter.UpdateTaskStatus(r.Context(), id, status); err != nil {
		log.Printf("[ui] updating task status: %v", err)
		h.redirect(w, r, NewPageURL(returnPath).WithError("Updating the status failed. Check the logs.").String())
		return
	}

	h.redirect(w, r, NewPageURL(returnPath).WithFlash("Updated!").String())
}

// dailyHandler serves the board of today's actionable tasks
func (h *TaskBoardHandler) dailyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flash := flashFromRequest(r)

	projects, err := h.adapter.ListProjects(r.Context())
	if err != nil {
		log.Printf("[ui] loading projects: %v", err)
	}

	tasks, err := h.adapter.ListTasks(r.Context(), core.TaskHistoryPageSize, core.OptionsToLookup(projects))
	if err != nil {
		h.writeHTTPError(w, fmt.Sprintf("Failed to load tasks: %v", err), http.StatusInternalServerError)
		return
	}

	board := core.BuildBoard(tasks, h.now().Format(time.DateOnly))
	h.render(w, r, Layout("Daily Tasks", "/daily", flash, DailyPage(board)))
}

// workoutsHandler serves the workout page and handles its form
func (h *TaskBoardHandler) workoutsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createWorkout(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flash := flashFromRequest(r)

	exercises, err := h.adapter.ListExercises(r.Context())
	if err != nil {
		log.Printf("[ui] loading exercises: %v", err)
		if flash.Message == "" {
			flash = Flash{Message: "Exercises could not be loaded.", IsError: true}
		}
	}

	workouts, err := h.adapter.ListWorkouts(r.Context(), core.WorkoutHistoryPageSize, core.OptionsToLookup(exercises))
	if err != nil {
		h.writeHTTPError(w, fmt.Sprintf("Failed to load workouts: %v", err), http.StatusInternalServerError)
		return
	}

	h.render(w, r, Layout("Workout Log", "/workouts", flash, WorkoutPage(exercises, workouts)))
}

func (h *TaskBoardHandler) createWorkout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeHTTPError(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	exercise := r.FormValue("exercise")
	if exercise == "" {
		h.redirect(w, r, NewPageURL("/workouts").WithError("Pick an exercise first").String())
		return
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("weight")), 64)
	if err != nil {
		h.redirect(w, r, NewPageURL("/workouts").WithError("Weight must be a number").String())
		return
	}

	reps, err := strconv.Atoi(strings.TrimSpace(r.FormValue("reps")))
	if err != nil {
		h.redirect(w, r, NewPageURL("/workouts").WithError("Reps must be a whole number").String())
		return
	}

	sets := 0
	if raw := strings.TrimSpace(r.FormValue("sets")); raw != "" {
		sets, err = strconv.Atoi(raw)
		if err != nil {
			h.redirect(w, r, NewPageURL("/workouts").WithError("Sets must be a whole number").String())
			return
		}
	}

	var day time.Time
	if raw := r.FormValue("date"); raw != "" {
		day, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			h.redirect(w, r, NewPageURL("/workouts").WithError("Date must look like 2006-01-02").String())
			return
		}
	}

	if err := h.adapter.AddWorkout(r.Context(), exercise, weight, reps, sets, day); err != nil {
		log.Printf("[ui] adding workout: %v", err)
		h.redirect(w, r, NewPageURL("/workouts").WithError("Saving the workout failed. Check the logs.").String())
		return
	}

	h.redirect(w, r, NewPageURL("/workouts").WithFlash("Workout saved").String())
}

// healthHandler answers liveness probes
func (h *TaskBoardHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (h *TaskBoardHandler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		h.writeHTTPError(w, "Template rendering error", http.StatusInternalServerError)
	}
}

func (h *TaskBoardHandler) redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// writeHTTPError writes an HTTP error response
func (h *TaskBoardHandler) writeHTTPError(w http.ResponseWriter, message string, statusCode int) {
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, "<html><body><h1>Error %d</h1><p>%s</p></body></html>", statusCode, message)
}

// sanitizeReturnPath keeps post-update redirects on the site. Only the
// known pages are allowed through.
func sanitizeReturnPath(path string) string {
	if path == "/daily" || path == "/workouts" {
		return path
	}
	return "/"
}
