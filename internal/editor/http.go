// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package editor

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/locale"
	"github.com/taibuivan/folio/internal/platform/middleware"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
)

const (
	// multipartMemory is kept in memory before ParseMultipartForm spills to disk.
	multipartMemory = 8 << 20

	// multipartOverhead allows for boundaries and part headers on top of the file bytes.
	multipartOverhead = 1 << 20
)

// Handler exposes the [Editor] over HTTP.
type Handler struct {
	editor  *Editor
	encoder *media.Encoder
	gate    AdminGate
}

// NewHandler creates a Handler. gate guards every editor route.
func NewHandler(editor *Editor, encoder *media.Encoder, gate AdminGate) *Handler {
	return &Handler{editor: editor, encoder: encoder, gate: gate}
}

// RegisterRoutes mounts the admin editing API. Every route requires an
// admin session.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAdmin(handler.gate))

	// Draft lifecycle
	router.Get("/", handler.getState)
	router.Post("/start", handler.startEditing)
	router.Post("/commit", handler.commit)
	router.Post("/discard", handler.discard)
	router.Post("/close", handler.closeEdit)
	router.Put("/settings", handler.updateSettings)

	router.Route("/hero", func(hero chi.Router) {
		hero.Get("/", handler.beginHero)
		hero.Put("/", handler.saveHero)
		hero.Put("/image", handler.setHeroImage)
	})

	router.Route("/projects", func(projects chi.Router) {
		projects.Get("/new", handler.beginProject)
		projects.Get("/{id}", handler.beginProject)
		projects.Post("/", handler.saveProject)
		projects.Delete("/{id}", handler.deleteProject)
		projects.Post("/{id}/images", handler.appendProjectImages)
		projects.Put("/{id}/cover", handler.setProjectCover)
		projects.Delete("/{id}/images/{index}", handler.removeProjectImage)
	})

	router.Route("/experiences", func(experiences chi.Router) {
		experiences.Get("/new", handler.beginExperience)
		experiences.Get("/{id}", handler.beginExperience)
		experiences.Post("/", handler.saveExperience)
		experiences.Delete("/{id}", handler.deleteExperience)
	})

	router.Route("/skills", func(skills chi.Router) {
		skills.Get("/new", handler.beginSkillCategory)
		skills.Get("/{id}", handler.beginSkillCategory)
		skills.Post("/", handler.saveSkillCategory)
		skills.Delete("/{id}", handler.deleteSkillCategory)
	})

	router.Route("/contact", func(contact chi.Router) {
		contact.Get("/", handler.beginContact)
		contact.Put("/", handler.saveContact)
		contact.Post("/methods", handler.addContactMethod)
		contact.Patch("/methods/{index}", handler.updateContactMethod)
		contact.Delete("/methods/{index}", handler.removeContactMethod)
	})
}

// RegisterContentRoutes mounts the public read API.
func (handler *Handler) RegisterContentRoutes(router chi.Router) {
	router.Get("/", handler.getContent)
	router.Get("/{locale}", handler.getLocaleContent)
}

// # Public Content

// LocalizedContent is one language of the active document plus its typography.
type LocalizedContent struct {
	Locale   locale.Locale            `json:"locale"`
	Settings content.Settings         `json:"settings"`
	Content  *content.LanguageContent `json:"content"`
}

/*
GET /api/v1/content.

Description: Returns the whole document. Visitors always see the committed
content; an admin with an open draft sees the draft.

Response:
  - 200: AppContent
*/
func (handler *Handler) getContent(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.editor.ActiveFor(request.Context()))
}

/*
GET /api/v1/content/{locale}.

Description: Returns one language of the document.

Request:
  - locale: "en" | "vn"

Response:
  - 200: LocalizedContent
  - 404: Unknown locale
*/
func (handler *Handler) getLocaleContent(writer http.ResponseWriter, request *http.Request) {
	l, ok := locale.Parse(requestutil.Param(request, "locale"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Locale"))
		return
	}

	doc := handler.editor.ActiveFor(request.Context())
	respond.OK(writer, LocalizedContent{
		Locale:   l,
		Settings: doc.Settings,
		Content:  doc.Language(l),
	})
}

// # Draft Lifecycle

func (handler *Handler) getState(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.editor.State(request.Context()))
}

/*
POST /api/v1/editor/start.

Description: Opens a draft cloned from the committed document. Calling it
while already editing keeps the existing draft.

Response:
  - 200: State
  - 403: Admin flag missing
*/
func (handler *Handler) startEditing(writer http.ResponseWriter, request *http.Request) {
	if err := handler.editor.StartEditing(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.editor.State(request.Context()))
}

/*
POST /api/v1/editor/commit.

Description: Promotes the draft to committed content and persists it. A
storage failure is reported in the result, never as an error status.

Response:
  - 200: CommitResult
  - 409: No draft open
*/
func (handler *Handler) commit(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.editor.Commit(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) discard(writer http.ResponseWriter, request *http.Request) {
	handler.editor.Discard(request.Context())
	respond.OK(writer, handler.editor.State(request.Context()))
}

func (handler *Handler) closeEdit(writer http.ResponseWriter, request *http.Request) {
	handler.editor.CloseEdit(request.Context())
	respond.NoContent(writer)
}

func (handler *Handler) updateSettings(writer http.ResponseWriter, request *http.Request) {
	var input content.Settings
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.UpdateSettings(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

// # Hero

func (handler *Handler) beginHero(writer http.ResponseWriter, request *http.Request) {
	pair, err := handler.editor.BeginHero(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) saveHero(writer http.ResponseWriter, request *http.Request) {
	var input content.Bilingual[content.Hero]
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.SaveHero(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.editor.Active().HeroPair())
}

/*
PUT /api/v1/editor/hero/image.

Description: Replaces the shared hero image with an uploaded file.

Request (multipart):
  - image: file

Response:
  - 200: {"imageUrl": data URL}
  - 422: Not an image or too large
*/
func (handler *Handler) setHeroImage(writer http.ResponseWriter, request *http.Request) {
	image, err := handler.readImage(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.SetHeroImage(request.Context(), image); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"imageUrl": image})
}

// # Projects

func (handler *Handler) beginProject(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.editor.BeginProject(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

/*
POST /api/v1/editor/projects.

Description: Creates a project (both ids 0) or updates one in place (both
ids equal). Shared fields are taken from the English variant.

Request (Body):
  - Bilingual[Project]

Response:
  - 201: Bilingual[Project]: Created
  - 200: Bilingual[Project]: Updated
  - 400: Validation errors
  - 404: Unknown id
  - 409: No draft open
*/
func (handler *Handler) saveProject(writer http.ResponseWriter, request *http.Request) {
	var input content.Bilingual[content.Project]
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.editor.SaveProject(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, _ := handler.editor.Active().FindProject(id)
	respondSaved(writer, input.En.ID == 0, pair)
}

/*
DELETE /api/v1/editor/projects/{id}?confirm=true.

Description: Removes a project from both languages. Without confirm=true
nothing is deleted and the localized confirmation prompt is returned.

Response:
  - 204: Deleted
  - 428: Confirmation required
  - 404: Unknown id
*/
func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	handler.deleteEntity(writer, request, content.MsgDeleteProjectConfirmation, handler.editor.DeleteProject)
}

/*
POST /api/v1/editor/projects/{id}/images.

Description: Appends uploaded images to the project gallery. Files are
encoded concurrently; either every file is appended or none is.

Request (multipart):
  - images: file (repeated)

Response:
  - 200: Bilingual[Project]
  - 422: A file is not an image
  - 409: Draft closed before the upload finished
*/
func (handler *Handler) appendProjectImages(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	images, err := handler.readImages(writer, request, "images")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.AppendProjectImages(request.Context(), id, images); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, _ := handler.editor.Active().FindProject(id)
	respond.OK(writer, pair)
}

func (handler *Handler) setProjectCover(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.readImage(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.SetProjectCover(request.Context(), id, image); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, _ := handler.editor.Active().FindProject(id)
	respond.OK(writer, pair)
}

func (handler *Handler) removeProjectImage(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.RemoveProjectImage(request.Context(), id, index); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Experiences

// experienceInput optionally carries the month-picker period. On save it
// overrides the period text of both languages.
type experienceInput struct {
	content.Bilingual[content.Experience]
	Period *content.PeriodInput `json:"period,omitempty"`
}

func (handler *Handler) beginExperience(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.editor.BeginExperience(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Prefill the month picker when the stored text is readable.
	output := experienceInput{Bilingual: pair}
	if period, ok := content.ParsePeriod(pair.En.Period); ok {
		output.Period = &period
	}
	respond.OK(writer, output)
}

func (handler *Handler) saveExperience(writer http.ResponseWriter, request *http.Request) {
	var input experienceInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair := input.Bilingual
	if input.Period != nil {
		periods, err := content.FormatPeriods(*input.Period)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("period", handler.editor.Message(request.Context(), content.MsgInvalidPeriod)))
			return
		}
		pair.En.Period, pair.Vn.Period = periods.En, periods.Vn
	}

	id, err := handler.editor.SaveExperience(request.Context(), pair)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, _ := handler.editor.Active().FindExperience(id)
	respondSaved(writer, pair.En.ID == 0, saved)
}

func (handler *Handler) deleteExperience(writer http.ResponseWriter, request *http.Request) {
	handler.deleteEntity(writer, request, content.MsgDeleteExperienceConfirmation, handler.editor.DeleteExperience)
}

// # Skill Categories

func (handler *Handler) beginSkillCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.editor.BeginSkillCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) saveSkillCategory(writer http.ResponseWriter, request *http.Request) {
	var input content.Bilingual[content.SkillCategory]
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.editor.SaveSkillCategory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, _ := handler.editor.Active().FindSkillCategory(id)
	respondSaved(writer, input.En.ID == 0, pair)
}

func (handler *Handler) deleteSkillCategory(writer http.ResponseWriter, request *http.Request) {
	handler.deleteEntity(writer, request, content.MsgDeleteSkillCategoryConfirmation, handler.editor.DeleteSkillCategory)
}

// # Contact

func (handler *Handler) beginContact(writer http.ResponseWriter, request *http.Request) {
	pair, err := handler.editor.BeginContact(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) saveContact(writer http.ResponseWriter, request *http.Request) {
	var input content.Bilingual[content.Contact]
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.SaveContact(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.editor.Active().ContactPair())
}

func (handler *Handler) addContactMethod(writer http.ResponseWriter, request *http.Request) {
	index, err := handler.editor.AddContactMethod(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]int{"index": index})
}

/*
PATCH /api/v1/editor/contact/methods/{index}.

Description: Patches one contact method. Type and URL change in both
languages; the label changes in the request locale only (?lang= or
Accept-Language).

Request (Body):
  - ContactMethodPatch

Response:
  - 200: Bilingual[Contact]
  - 400: Invalid type, link or index
*/
func (handler *Handler) updateContactMethod(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ContactMethodPatch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.UpdateContactMethod(request.Context(), index, requestutil.Locale(request), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.editor.Active().ContactPair())
}

func (handler *Handler) removeContactMethod(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editor.RemoveContactMethod(request.Context(), index); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

// entityID reads {id}; the /new routes have none and yield 0.
func entityID(request *http.Request) (int, error) {
	if requestutil.Param(request, "id") == "" {
		return 0, nil
	}
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, err
	}
	return id, nil
}

func respondSaved(writer http.ResponseWriter, created bool, payload any) {
	if created {
		respond.Created(writer, payload)
		return
	}
	respond.OK(writer, payload)
}

// deleteEntity requires ?confirm=true and answers 428 with the localized
// prompt otherwise.
func (handler *Handler) deleteEntity(writer http.ResponseWriter, request *http.Request, promptKey string, remove func(context.Context, int) error) {
	id, err := entityID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !requestutil.Confirmed(request) {
		respond.Error(writer, request, apperr.PreconditionRequired(handler.editor.Message(request.Context(), promptKey)))
		return
	}

	if err := remove(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// readImage encodes the single "image" part of a multipart request.
func (handler *Handler) readImage(writer http.ResponseWriter, request *http.Request) (string, error) {
	images, err := handler.readImages(writer, request, "image")
	if err != nil {
		return "", err
	}
	return images[0], nil
}

// readImages parses a multipart request and encodes every file under field.
func (handler *Handler) readImages(writer http.ResponseWriter, request *http.Request, field string) ([]string, error) {
	limit := int64(constants.MaxUploadFiles)*handler.encoder.MaxFileBytes() + multipartOverhead
	request.Body = http.MaxBytesReader(writer, request.Body, limit)

	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.Unprocessable(handler.editor.Message(request.Context(), content.MsgFileTooLarge))
		}
		return nil, apperr.ValidationError("Request must be multipart/form-data")
	}
	defer request.MultipartForm.RemoveAll()

	files := request.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, validate.RequiredError(field, "at least one file is required")
	}

	images, err := handler.encoder.EncodeAll(request.Context(), media.FromMultipart(files))
	if err != nil {
		return nil, handler.uploadError(request.Context(), err)
	}
	return images, nil
}

// uploadError maps encoding failures to localized client errors.
func (handler *Handler) uploadError(context context.Context, err error) error {
	switch {
	case errors.Is(err, media.ErrNotImage):
		return apperr.Unprocessable(handler.editor.Message(context, content.MsgNotImage))
	case errors.Is(err, media.ErrTooLarge):
		return apperr.Unprocessable(handler.editor.Message(context, content.MsgFileTooLarge))
	case errors.Is(err, media.ErrTooManyFiles):
		return apperr.Unprocessable(handler.editor.Message(context, content.MsgTooManyFiles))
	default:
		return apperr.Internal(err)
	}
}
