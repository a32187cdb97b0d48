package partials

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
)

// modalShell wraps modal content in the shared overlay chrome.
func modalShell(title string, body gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class("fixed inset-0 z-40 bg-black/50 flex items-start justify-center overflow-y-auto py-10"),
		html.Div(
			html.Class("bg-white rounded-xl shadow-xl w-full max-w-2xl p-8"),
			html.Div(
				html.Class("flex items-center justify-between mb-6"),
				html.H2(html.Class("text-xl font-bold"), gomponents.Text(title)),
				html.Button(
					html.Type("button"),
					html.Class("text-gray-400 hover:text-gray-600 text-2xl leading-none"),
					gomponents.Attr("onclick", "closeModal()"),
					gomponents.Text("×"),
				),
			),
			body,
		),
	)
}

// EditModal renders the profile edit form. Every control posts its change
// back immediately, so the server-side draft always reflects the form.
func EditModal(data dashboard.EditFormData) gomponents.Node {
	return modalShell("Edit Profile",
		html.Div(
			html.Class("space-y-6"),
			EditImageSection(data.ProfileImage, data.Uploading),
			TextField("name", "Name", data.Name, data.NameError),
			TextField("designation", "Designation", data.Designation, data.DesignationError),
			BioField(data.Bio),
			html.Div(
				html.Class("space-y-3"),
				html.H3(html.Class("text-sm font-semibold text-gray-700"), gomponents.Text("Social Links")),
				gomponents.Map(data.Social, SocialInputRow),
			),
			SkillsEditor(data.Skills, data.NewSkill),
			html.Div(
				html.Class("flex justify-end gap-3 pt-4 border-t border-gray-100"),
				html.Button(
					html.Type("button"),
					html.Class("px-4 py-2 rounded-lg text-gray-600 hover:bg-gray-100 text-sm font-medium"),
					hx.Post("/dashboard/edit/cancel"),
					hx.Target("#modal-root"),
					hx.Swap("innerHTML"),
					gomponents.Text("Cancel"),
				),
				html.Button(
					html.Type("button"),
					html.Class("px-4 py-2 rounded-lg bg-emerald-600 text-white hover:bg-emerald-700 text-sm font-medium"),
					hx.Post("/dashboard/edit/save"),
					hx.Target("#modal-root"),
					hx.Swap("innerHTML"),
					gomponents.Text("Save Changes"),
				),
			),
		),
	)
}

// EditImageSection shows the current draft image and the upload control.
// It is its own swap target so an upload only re-renders this block.
func EditImageSection(imageURL string, uploading bool) gomponents.Node {
	return html.Div(
		html.ID("edit-image-section"),
		html.Class("flex items-center gap-4"),
		gomponents.If(imageURL != "",
			html.Img(html.Src(imageURL), html.Alt("Profile image"), html.Class("w-16 h-16 rounded-full object-cover")),
		),
		gomponents.If(imageURL == "",
			html.Div(html.Class("w-16 h-16 rounded-full bg-gray-200")),
		),
		html.Form(
			hx.Post("/dashboard/edit/image"),
			hx.Encoding("multipart/form-data"),
			hx.Target("#edit-image-section"),
			hx.Swap("outerHTML"),
			html.Input(
				html.Type("file"),
				html.Name("file"),
				html.Accept("image/*"),
				html.Class("text-sm"),
				gomponents.Attr("onchange", "this.form.requestSubmit()"),
			),
			gomponents.If(uploading,
				html.Span(html.Class("ml-2 text-sm text-gray-500"), gomponents.Text("Uploading…")),
			),
			html.P(html.Class("mt-1 text-xs text-gray-400"), gomponents.Text("JPG, PNG or GIF, up to 5 MB.")),
		),
	)
}

// textField renders a labelled single-line input that posts on change.
func TextField(field, label, value, errMsg string) gomponents.Node {
	id := "field-" + field
	return html.Div(
		html.ID(id),
		html.Label(html.Class("block text-sm font-medium text-gray-700 mb-1"), gomponents.Text(label)),
		html.Input(
			html.Type("text"),
			html.Name("value"),
			html.Value(value),
			html.Class(inputClass(errMsg)),
			hx.Post("/dashboard/edit/field"),
			hx.Vals(`{"field":"`+field+`"}`),
			hx.Trigger("change"),
			hx.Target("#"+id),
			hx.Swap("outerHTML"),
		),
		fieldError(errMsg),
	)
}

func BioField(value string) gomponents.Node {
	return html.Div(
		html.ID("field-bio"),
		html.Label(html.Class("block text-sm font-medium text-gray-700 mb-1"), gomponents.Text("Bio")),
		html.Textarea(
			html.Name("value"),
			html.Rows("3"),
			html.Class(inputClass("")),
			hx.Post("/dashboard/edit/field"),
			hx.Vals(`{"field":"bio"}`),
			hx.Trigger("change"),
			hx.Target("#field-bio"),
			hx.Swap("outerHTML"),
			gomponents.Text(value),
		),
	)
}

// SocialInputRow renders one social link input with its verification badge.
func SocialInputRow(s dashboard.SocialLinkInput) gomponents.Node {
	id := "field-" + string(s.Platform)
	return html.Div(
		html.ID(id),
		html.Div(
			html.Class("flex items-center justify-between mb-1"),
			html.Label(html.Class("block text-sm font-medium text-gray-700"), gomponents.Text(s.Label)),
			gomponents.If(s.Verifiable, VerificationBadge(s.Platform, s.Verification, s.Value != "")),
		),
		html.Input(
			html.Type("text"),
			html.Name("value"),
			html.Value(s.Value),
			html.Placeholder(s.Placeholder),
			html.Class(inputClass(s.Error)),
			hx.Post("/dashboard/edit/field"),
			hx.Vals(`{"field":"social.`+string(s.Platform)+`"}`),
			hx.Trigger("change"),
			hx.Target("#"+id),
			hx.Swap("outerHTML"),
		),
		fieldError(s.Error),
	)
}

// VerificationBadge shows the tri-state check result. While a check is
// pending (unknown state with a value present) the badge polls for its own
// replacement until the result lands.
func VerificationBadge(platform domain.Platform, state dashboard.VerificationState, hasValue bool) gomponents.Node {
	id := "verify-" + string(platform)
	var (
		class string
		text  string
	)
	switch {
	case state == dashboard.VerificationValid:
		class, text = "text-green-600", "✓ Looks good"
	case state == dashboard.VerificationInvalid:
		class, text = "text-red-600", "✗ Invalid link"
	case hasValue:
		class, text = "text-gray-400", "Checking…"
	default:
		class = "text-gray-300"
	}
	return html.Span(
		html.ID(id),
		html.Class("text-xs "+class),
		gomponents.If(state == dashboard.VerificationUnknown && hasValue, gomponents.Group([]gomponents.Node{
			hx.Get("/dashboard/edit/verification?platform=" + string(platform)),
			hx.Trigger("every 700ms"),
			hx.Swap("outerHTML"),
		})),
		gomponents.Text(text),
	)
}

// SkillsEditor renders the removable skill chips and the add-skill input.
func SkillsEditor(skills []string, newSkill string) gomponents.Node {
	return html.Div(
		html.ID("skills-editor"),
		html.H3(html.Class("text-sm font-semibold text-gray-700 mb-2"), gomponents.Text("Skills")),
		html.Div(
			html.Class("flex flex-wrap gap-2 mb-3"),
			gomponents.Map(skills, func(skill string) gomponents.Node {
				return html.Span(
					html.Class("pl-3 pr-1 py-1 bg-emerald-50 text-emerald-800 rounded-full text-sm flex items-center gap-1"),
					gomponents.Text(skill),
					html.Button(
						html.Type("button"),
						html.Class("w-5 h-5 rounded-full hover:bg-emerald-200 text-emerald-700"),
						hx.Post("/dashboard/edit/skills/remove"),
						hx.Vals(`{"skill":`+jsonString(skill)+`}`),
						hx.Target("#skills-editor"),
						hx.Swap("outerHTML"),
						gomponents.Text("×"),
					),
				)
			}),
		),
		html.Form(
			html.Class("flex gap-2"),
			hx.Post("/dashboard/edit/skills/add"),
			hx.Target("#skills-editor"),
			hx.Swap("outerHTML"),
			html.Input(
				html.Type("text"),
				html.Name("skill"),
				html.Value(newSkill),
				html.Placeholder("Add a skill"),
				html.Class(inputClass("")),
			),
			html.Button(
				html.Type("submit"),
				html.Class("px-4 py-2 rounded-lg bg-emerald-600 text-white text-sm font-medium hover:bg-emerald-700"),
				gomponents.Text("Add"),
			),
		),
	)
}

func inputClass(errMsg string) string {
	base := "w-full px-3 py-2 border rounded-lg text-sm focus:outline-none focus:ring-2 focus:ring-emerald-500 "
	if errMsg != "" {
		return base + "border-red-400"
	}
	return base + "border-gray-300"
}

func fieldError(errMsg string) gomponents.Node {
	if errMsg == "" {
		return nil
	}
	return html.P(html.Class("mt-1 text-xs text-red-600"), gomponents.Text(errMsg))
}
