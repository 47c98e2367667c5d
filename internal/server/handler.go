// Package server exposes the planning core over HTTP. It is a thin external
// collaborator: all scheduling and graph logic stays in the core packages, and
// every request operates on explicit session state rather than globals.
package server

import (
	"errors"
	"io"
	"net/http"
	"slices"
	"sync"

	"courseplan/internal/catalog"
	"courseplan/internal/prereq"
	"courseplan/internal/schedule"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// PlannerHandler serves one planning session. A multi-user deployment would
// hold one of these per authenticated session; the mutex serializes the demo
// deployment's single session.
type PlannerHandler struct {
	mu      sync.Mutex
	session *schedule.Session
	index   catalog.CourseIndex
	graph   prereq.Graph
}

func NewPlannerHandler() *PlannerHandler {
	return &PlannerHandler{session: schedule.NewSession()}
}

type titleSummary struct {
	Title      string `json:"title"`
	Candidates int    `json:"candidates"`
}

type blockView struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Room     string `json:"room,omitempty"`
	Building string `json:"building,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

type assignmentEntry struct {
	CRN    string      `json:"crn"`
	Code   string      `json:"code"`
	Title  string      `json:"title"`
	Blocks []blockView `json:"blocks"`
}

func viewOf(section catalog.Section) assignmentEntry {
	return assignmentEntry{
		CRN:   section.CRN,
		Code:  section.Code(),
		Title: section.Title,
		Blocks: lo.Map(schedule.BlocksOf(section), func(b schedule.Block, _ int) blockView {
			return blockView{
				Day:      b.Day.String(),
				Start:    schedule.FormatClock(b.Start),
				End:      schedule.FormatClock(b.End),
				Room:     b.Room,
				Building: b.Building,
				Kind:     b.Kind,
			}
		}),
	}
}

func (h *PlannerHandler) assignmentView() map[string]assignmentEntry {
	view := make(map[string]assignmentEntry)
	for title, section := range h.session.Assignment() {
		view[title] = viewOf(section)
	}
	return view
}

func (h *PlannerHandler) conflictList() []string {
	conflicts := lo.Keys(h.session.Conflicts())
	slices.Sort(conflicts)
	return conflicts
}

// LoadSnapshot replaces the session's section snapshot with the request body,
// which may be a bare array of sections or a wrapper object.
func (h *PlannerHandler) LoadSnapshot(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read request body"})
	}

	sections, err := catalog.SectionsFromJSON(body)
	if errors.Is(err, catalog.ErrNoRecords) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "snapshot contains no sections"})
	} else if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.SetSections(sections)
	h.index = catalog.BuildCourseIndex(sections)

	return c.JSON(http.StatusOK, echo.Map{
		"sections": len(sections),
		"titles":   len(h.session.Titles()),
	})
}

// GetTitles lists the known title keys with their candidate counts under the
// session's current filter.
func (h *PlannerHandler) GetTitles(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	items := lo.Map(h.session.Titles(), func(title string, _ int) titleSummary {
		return titleSummary{Title: title, Candidates: len(h.session.Candidates(title))}
	})
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type solveRequest struct {
	Titles        []string `json:"titles"`
	IncludeClosed bool     `json:"includeClosed"`
}

// Solve computes an assignment for the requested titles. Infeasibility is a
// 422 with an explicit reason, never a 500: the caller must be able to tell
// "no solution" from a solver failure.
func (h *PlannerHandler) Solve(c echo.Context) error {
	var request solveRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.session.SetIncludeClosed(request.IncludeClosed)
	assignment, err := h.session.Solve(request.Titles)
	if errors.Is(err, schedule.ErrNothingToSchedule) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no requested title has candidates"})
	} else if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	} else if assignment == nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no conflict-free combination exists"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"assignment": h.assignmentView(),
		"conflicts":  h.conflictList(),
	})
}

type overrideRequest struct {
	Title string `json:"title"`
	CRN   string `json:"crn"`
}

// Override swaps a single assignment entry. An unknown target is reported as
// not applied rather than as an error, matching the core's no-op contract.
func (h *PlannerHandler) Override(c echo.Context) error {
	var request overrideRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	applied := h.session.Override(request.Title, request.CRN)
	return c.JSON(http.StatusOK, echo.Map{
		"applied":    applied,
		"assignment": h.assignmentView(),
		"conflicts":  h.conflictList(),
	})
}

// LoadCurriculum replaces the active study plan. The plan is selected by the
// specialization/degree/year query parameters, defaulting to the document's
// first plan.
func (h *PlannerHandler) LoadCurriculum(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read request body"})
	}

	plans, err := prereq.PlansFromJSON(body)
	if errors.Is(err, prereq.ErrNoPlans) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "document contains no study plans"})
	} else if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	plan := plans[0]
	if specialization := c.QueryParam("specialization"); specialization != "" {
		selected, found := prereq.FindPlan(plans, specialization, c.QueryParam("degree"), c.QueryParam("year"))
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "study plan not found"})
		}
		plan = selected
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.graph = prereq.NewGraph(plan)

	return c.JSON(http.StatusOK, echo.Map{
		"plan":    plan.Key(),
		"courses": len(plan.AllCourses()),
	})
}

// GetPrereqs answers the four reachability sets for a course code, joined with
// the catalog's offered/selectable status.
func (h *PlannerHandler) GetPrereqs(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.graph == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no curriculum loaded"})
	}

	code := c.Param("code")
	return c.JSON(http.StatusOK, echo.Map{
		"code":                  catalog.NormalizeCode(code),
		"directPrerequisites":   h.graph.DirectPrerequisites(code),
		"indirectPrerequisites": h.graph.IndirectPrerequisites(code),
		"directDependents":      h.graph.DirectDependents(code),
		"indirectDependents":    h.graph.IndirectDependents(code),
		"offered":               h.index.Offered(code),
		"selectable":            h.index.Selectable(code, h.session.IncludeClosed()),
	})
}
