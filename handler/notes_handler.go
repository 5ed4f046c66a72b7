package handler

import (
	"strings"

	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	Notes *usecase.NoteService
}

func NewNoteHandler(notes *usecase.NoteService) *NoteHandler {
	return &NoteHandler{Notes: notes}
}

func requester(c *gin.Context) (usecase.Requester, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "No token provided")
		return usecase.Requester{}, false
	}
	return usecase.Requester{UserID: claims.UserID, Role: claims.Role}, true
}

// List handles GET /api/notes?tag=<csv>&visibility=<public|private>.
func (h *NoteHandler) List(c *gin.Context) {
	r, ok := requester(c)
	if !ok {
		return
	}

	var tags []string
	if raw := c.Query("tag"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	notes, err := h.Notes.List(c.Request.Context(), r, tags, c.Query("visibility"))
	if err != nil {
		respondError(c, err, "error retrieving notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func (h *NoteHandler) Create(c *gin.Context) {
	r, ok := requester(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	note, err := h.Notes.Create(c.Request.Context(), r, usecase.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Visibility: req.Visibility,
		Tags:       req.Tags,
	})
	if err != nil {
		respondError(c, err, "error creating note")
		return
	}

	utils.Created(c, "note created successfully", dto.ToNoteResponse(note))
}

func (h *NoteHandler) Get(c *gin.Context) {
	r, ok := requester(c)
	if !ok {
		return
	}

	note, err := h.Notes.Get(c.Request.Context(), r, c.Param("id"))
	if err != nil {
		respondError(c, err, "error retrieving note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Update(c *gin.Context) {
	r, ok := requester(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	note, err := h.Notes.Update(c.Request.Context(), r, c.Param("id"), usecase.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Visibility: req.Visibility,
		Tags:       req.Tags,
	})
	if err != nil {
		respondError(c, err, "error updating note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Delete(c *gin.Context) {
	r, ok := requester(c)
	if !ok {
		return
	}

	if err := h.Notes.Delete(c.Request.Context(), r, c.Param("id")); err != nil {
		respondError(c, err, "error deleting note")
		return
	}

	utils.Success(c, gin.H{"message": "note deleted successfully"})
}
