package partials

import (
	"context"

	"freevector_app_go/models"
	"freevector_app_go/services"
	"freevector_app_go/services/i18n"
	"freevector_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContactFormData holds what the custom plan form needs to (re)render
type ContactFormData struct {
	CSRFToken        string
	TurnstileSiteKey string
	Values           services.ContactInput
	Error            string // already translated
}

// ContactForm renders the form alone, used to swap it back in with an error
func ContactForm(data ContactFormData) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return ContactFormNode(ctx, data)
	})
}

// ContactFormNode renders the contact sales form
func ContactFormNode(ctx context.Context, data ContactFormData) g.Node {
	v := data.Values
	return h.Form(
		h.ID("contact-form"), h.Class("contact-form"),
		h.Action("/contact-sales"), h.Method("post"),
		g.Attr("hx-post", "/contact-sales"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(data.CSRFToken)),
		h.Input(h.Type("hidden"), h.Name("plan_tier"), h.Value(v.PlanTier)),

		g.If(data.Error != "", alert(data.Error)),

		h.Div(
			h.Class("form-row"),
			field(i18n.T(ctx, "contact.name"), h.Input(h.ID("contact-name"), h.Name("name"), h.Type("text"), h.Value(v.Name), h.Required(), h.AutoComplete("name")), "contact-name"),
			field(i18n.T(ctx, "contact.email"), h.Input(h.ID("contact-email"), h.Name("email"), h.Type("email"), h.Value(v.Email), h.Required(), h.AutoComplete("email")), "contact-email"),
		),
		h.Div(
			h.Class("form-row"),
			field(i18n.T(ctx, "contact.company"), h.Input(h.ID("contact-company"), h.Name("company"), h.Type("text"), h.Value(v.Company), h.AutoComplete("organization")), "contact-company"),
			field(i18n.T(ctx, "contact.team_size"), h.Select(
				h.ID("contact-team-size"), h.Name("team_size"),
				h.Option(h.Value(""), g.Text("-")),
				g.Map(models.TeamSizes, func(size string) g.Node {
					return h.Option(h.Value(size), g.If(size == v.TeamSize, h.Selected()), g.Text(size))
				}),
			), "contact-team-size"),
		),
		field(i18n.T(ctx, "contact.message"), h.Textarea(
			h.ID("contact-message"), h.Name("message"), h.Rows("4"), h.Required(),
			h.MaxLength("2000"),
			g.Text(v.Message),
		), "contact-message"),

		g.If(data.TurnstileSiteKey != "",
			h.Div(h.Class("cf-turnstile"), h.Data("sitekey", data.TurnstileSiteKey)),
		),

		h.Button(h.Type("submit"), h.Class("btn btn-primary"),
			components.Glyph("send", "icon-sm"),
			g.Text(i18n.T(ctx, "contact.submit")),
		),
	)
}

func field(label string, input g.Node, id string) g.Node {
	return h.Div(
		h.Class("form-field"),
		h.Label(h.For(id), g.Text(label)),
		input,
	)
}

func alert(message string) g.Node {
	return h.Div(
		h.Class("alert alert-error"), h.Role("alert"),
		components.Glyph("circle-alert", "icon-sm"),
		h.Span(g.Text(message)),
	)
}

// ContactSuccess replaces the form once the request is stored
func ContactSuccess(name string) templ.Component {
	return components.Build(func(ctx context.Context) g.Node {
		return ContactSuccessNode(ctx, name)
	})
}

// ContactSuccessNode renders the confirmation in place of the form
func ContactSuccessNode(ctx context.Context, name string) g.Node {
	return h.Div(
		h.ID("contact-form"), h.Class("alert alert-success"), h.Role("status"),
		components.Glyph("circle-check", "icon-sm"),
		h.Span(g.Text(i18n.T(ctx, "contact.success", map[string]interface{}{"name": name}))),
	)
}
