package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// EditorHandler serves the edit-profile modal and its htmx fragments.
type EditorHandler struct {
	editors   *profile.Manager
	notifier  view.Notifier
	publisher pubsub.Publisher
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(editors *profile.Manager, notifier view.Notifier, publisher pubsub.Publisher) *EditorHandler {
	return &EditorHandler{editors: editors, notifier: notifier, publisher: publisher}
}

func (h *EditorHandler) editor(c echo.Context) *profile.Editor {
	return h.editors.Get(middleware.SessionIDFrom(c))
}

// ModalGet opens the edit modal, starting a fresh draft from the saved
// profile.
func (h *EditorHandler) ModalGet(c echo.Context) error {
	editor := h.editor(c)
	editor.Begin()
	return c.Render(http.StatusOK, "", partials.EditModal(editFormData(editor)))
}

// FieldPost stores a single field edit and re-renders that field's
// fragment with any validation outcome.
func (h *EditorHandler) FieldPost(c echo.Context) error {
	var req FieldEditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	field, err := profile.ParseField(req.Field)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown field.")
	}

	editor := h.editor(c)
	editor.SetField(field, req.Value)

	return c.Render(http.StatusOK, "", h.fieldFragment(editor, field))
}

// VerificationGet serves the polling endpoint behind the social link badge.
func (h *EditorHandler) VerificationGet(c echo.Context) error {
	platform := domain.Platform(c.QueryParam("platform"))
	verifiable := false
	for _, p := range domain.VerifiablePlatforms() {
		if p == platform {
			verifiable = true
			break
		}
	}
	if !verifiable {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown platform.")
	}

	editor := h.editor(c)
	value := editor.Draft().Social.Get(platform)
	state := verificationState(editor.Verification()[platform])
	return c.Render(http.StatusOK, "", partials.VerificationBadge(platform, state, value != ""))
}

// SkillAddPost appends a skill to the draft. Duplicates and blank input
// leave the list untouched but keep the typed value in the input.
func (h *EditorHandler) SkillAddPost(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	editor := h.editor(c)
	editor.SetNewSkill(req.Skill)
	editor.AddSkill(req.Skill)

	return c.Render(http.StatusOK, "", partials.SkillsEditor(editor.Draft().Skills, editor.NewSkill()))
}

// SkillRemovePost removes a skill from the draft.
func (h *EditorHandler) SkillRemovePost(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	editor := h.editor(c)
	editor.RemoveSkill(req.Skill)

	return c.Render(http.StatusOK, "", partials.SkillsEditor(editor.Draft().Skills, editor.NewSkill()))
}

// SavePost validates the draft and, when it passes, promotes it to the
// saved profile, closes the modal and refreshes the header out of band. On
// failure the modal is re-rendered with the field errors.
func (h *EditorHandler) SavePost(c echo.Context) error {
	editor := h.editor(c)
	if !editor.Save() {
		return c.Render(http.StatusOK, "", partials.EditModal(editFormData(editor)))
	}

	saved := editor.Profile()
	h.publishSaved(c, saved)
	h.notifier.Notify(c, "Profile updated successfully!")

	return c.Render(http.StatusOK, "", gomponents.Group([]gomponents.Node{
		partials.ProfileHeader(saved, true),
		partials.Flash(view.GetFlashData(c), true),
	}))
}

// CancelPost discards the draft and closes the modal.
func (h *EditorHandler) CancelPost(c echo.Context) error {
	h.editor(c).Cancel()
	return c.HTML(http.StatusOK, "")
}

func (h *EditorHandler) publishSaved(c echo.Context, p domain.Profile) {
	logger := middleware.FromContext(c.Request().Context())
	payload, err := json.Marshal(pubsub.ProfileSavedEvent{
		Name:        p.Name,
		Designation: p.Designation,
		Skills:      p.Skills,
	})
	if err != nil {
		logger.Error("failed to encode profile.saved payload", "error", err)
		return
	}
	err = h.publisher.Publish(c.Request().Context(), pubsub.Message{
		Topic:     pubsub.TopicProfileSaved,
		SessionID: middleware.SessionIDFrom(c),
		Payload:   payload,
	})
	if err != nil {
		logger.Error("failed to publish profile.saved", "error", err)
	}
}

func (h *EditorHandler) fieldFragment(editor *profile.Editor, field profile.Field) gomponents.Node {
	draft := editor.Draft()
	errs := editor.Errors()

	if platform, ok := field.Social(); ok {
		return partials.SocialInputRow(socialRow(platform, draft, errs, editor.Verification()))
	}
	switch field {
	case profile.FieldName:
		return partials.TextField("name", "Name", draft.Name, errs[profile.FieldName])
	case profile.FieldDesignation:
		return partials.TextField("designation", "Designation", draft.Designation, errs[profile.FieldDesignation])
	case profile.FieldBio:
		return partials.BioField(draft.Bio)
	default:
		return partials.EditImageSection(draft.ProfileImage, editor.Uploading())
	}
}

func verificationState(v *bool) dashboard.VerificationState {
	switch {
	case v == nil:
		return dashboard.VerificationUnknown
	case *v:
		return dashboard.VerificationValid
	default:
		return dashboard.VerificationInvalid
	}
}

// socialRowSpec fixes the label, placeholder and display order of the
// social link inputs.
var socialRowSpecs = []struct {
	platform    domain.Platform
	label       string
	placeholder string
	verifiable  bool
}{
	{domain.PlatformLinkedIn, "LinkedIn", "https://linkedin.com/in/your-name", true},
	{domain.PlatformGitHub, "GitHub", "https://github.com/your-name", true},
	{domain.PlatformInstagram, "Instagram", "https://instagram.com/your.name", true},
	{domain.PlatformEmail, "Email", "you@example.com", false},
}

func socialRow(platform domain.Platform, draft domain.Profile, errs map[profile.Field]string, verif profile.Verification) dashboard.SocialLinkInput {
	for _, spec := range socialRowSpecs {
		if spec.platform != platform {
			continue
		}
		return dashboard.SocialLinkInput{
			Platform:     platform,
			Label:        spec.label,
			Placeholder:  spec.placeholder,
			Value:        draft.Social.Get(platform),
			Error:        errs[profile.SocialField(platform)],
			Verification: verificationState(verif[platform]),
			Verifiable:   spec.verifiable,
		}
	}
	return dashboard.SocialLinkInput{Platform: platform}
}

func editFormData(editor *profile.Editor) dashboard.EditFormData {
	draft := editor.Draft()
	errs := editor.Errors()
	verif := editor.Verification()

	social := make([]dashboard.SocialLinkInput, 0, len(socialRowSpecs))
	for _, spec := range socialRowSpecs {
		social = append(social, socialRow(spec.platform, draft, errs, verif))
	}

	return dashboard.EditFormData{
		Name:             draft.Name,
		NameError:        errs[profile.FieldName],
		Designation:      draft.Designation,
		DesignationError: errs[profile.FieldDesignation],
		Bio:              draft.Bio,
		ProfileImage:     draft.ProfileImage,
		Uploading:        editor.Uploading(),
		Skills:           draft.Skills,
		NewSkill:         editor.NewSkill(),
		Social:           social,
	}
}
