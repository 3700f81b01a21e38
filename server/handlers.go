package server

import (
	"bytes"
	"encoding/json"
	"log"
	"math"

	"github.com/gofiber/fiber/v3"

	planarfacefinder "github.com/farkasseb/PlanarFaceFinder"
	"github.com/farkasseb/PlanarFaceFinder/render"
)

// ============================================================
// Handlers
// ============================================================

// Strokes with a coordinate beyond this magnitude are refused
const MaxCoordinate = 1e6

type Handlers struct {
	store *SessionStore
	style render.Style
}

func NewHandlers(store *SessionStore, style render.Style) *Handlers {
	return &Handlers{store: store, style: style}
}

// LivenessProbe reports that the process is up
func (h *Handlers) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe reports whether new sessions can be opened
func (h *Handlers) ReadinessProbe(c fiber.Ctx) error {
	if h.store.limit > 0 && h.store.Len() >= h.store.limit {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "full",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}

func (h *Handlers) CreateSession(c fiber.Ctx) error {
	id, err := h.store.Create()
	if err != nil {
		log.Printf("[SESSION] Create error: %v", err)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	log.Printf("[SESSION] Created %s", id)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

func (h *Handlers) GetSession(c fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return notFound(c)
	}
	return c.JSON(session.Scene())
}

func (h *Handlers) DeleteSession(c fiber.Ctx) error {
	if !h.store.Delete(c.Params("id")) {
		return notFound(c)
	}
	log.Printf("[SESSION] Deleted %s", c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// AddStroke inserts one stroke and replies with the updated scene
func (h *Handlers) AddStroke(c fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body required",
		})
	}

	var stroke planarfacefinder.Segment
	if err := json.Unmarshal(c.Body(), &stroke); err != nil {
		log.Printf("[STROKE] Decode error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}
	if !inRange(stroke.Start) || !inRange(stroke.End) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "coordinates out of range",
		})
	}

	var scene planarfacefinder.Scene
	err := session.Do(func(f *planarfacefinder.Finder) error {
		err := f.Insert(stroke.Start, stroke.End)
		scene = f.Scene()
		return err
	})
	if err != nil {
		log.Printf("[STROKE] Engine fault in %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(scene)
}

// ResetStrokes clears the drawing but keeps the session
func (h *Handlers) ResetStrokes(c fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	var scene planarfacefinder.Scene
	err := session.Do(func(f *planarfacefinder.Finder) error {
		f.Reset()
		scene = f.Scene()
		return nil
	})
	if err != nil {
		log.Printf("[STROKE] Reset error in %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(scene)
}

func (h *Handlers) RenderPNG(c fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, session.Scene(), h.style); err != nil {
		log.Printf("[RENDER] PNG error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func (h *Handlers) RenderSVG(c fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return notFound(c)
	}

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, session.Scene(), h.style); err != nil {
		log.Printf("[RENDER] SVG error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(buf.String())
}

func inRange(p planarfacefinder.Point) bool {
	for _, v := range []float64{p.X, p.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxCoordinate {
			return false
		}
	}
	return true
}

func (h *Handlers) session(c fiber.Ctx) (*Session, bool) {
	return h.store.Get(c.Params("id"))
}

func notFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "session not found",
	})
}
