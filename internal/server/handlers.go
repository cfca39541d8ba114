package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/openapi"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) openAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openapi.Raw())
}

// showForm renders the empty form. The candidate query parameters fill the
// copy placeholders and travel with the submission as hidden fields.
func (s *Server) showForm(c *gin.Context) {
	uctx := uischema.Context{
		CandidateName:      c.Query(render.HiddenCandidate),
		CandidateFirstName: c.Query(render.HiddenCandidateFirstName),
	}
	s.renderPage(c, http.StatusOK, uctx, nil, render.RenderOptions{})
}

// submitForm handles the browser post. Failing fields re-render with their
// messages (422); an accepted bundle renders the confirmation page.
func (s *Server) submitForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		s.renderPage(c, http.StatusBadRequest, uischema.Context{}, nil, render.RenderOptions{
			FormErrors: []string{"The form could not be read. Please try again."},
		})
		return
	}
	form := c.Request.PostForm
	uctx := uischema.Context{
		CandidateName:      form.Get(render.HiddenCandidate),
		CandidateFirstName: form.Get(render.HiddenCandidateFirstName),
	}

	values := make(map[string]any, len(debrief.Fields()))
	for _, name := range debrief.Fields() {
		if raw, ok := form[string(name)]; ok && len(raw) > 0 {
			values[string(name)] = raw[len(raw)-1]
		}
	}
	if name, ok := values[string(debrief.FieldNextInterviewerName)].(string); ok {
		uctx.NextInterviewerName = name
	}

	controller := s.newController()
	if err := controller.SetValues(values); err != nil {
		s.renderPage(c, http.StatusBadRequest, uctx, nil, render.RenderOptions{
			Values:     controller.Draft().Values(),
			FormErrors: []string{err.Error()},
		})
		return
	}

	feedback, err := controller.Submit(c.Request.Context())
	if err != nil {
		fieldErrs, ok := debrief.AsFieldErrors(err)
		if !ok {
			s.fail(c, err)
			return
		}
		s.renderPage(c, http.StatusUnprocessableEntity, uctx, fieldErrs, render.RenderOptions{
			Values: controller.Draft().Values(),
		})
		return
	}
	s.renderPage(c, http.StatusOK, uctx, nil, render.RenderOptions{Submitted: &feedback})
}

// submitAPI handles JSON submissions.
func (s *Server) submitAPI(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	controller := s.newController()
	if err := controller.SetValues(payload); err != nil {
		_ = c.Error(err)
		return
	}
	feedback, err := controller.Submit(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (s *Server) newController() *debrief.Controller {
	return debrief.New(
		debrief.WithSubmitter(s.submitter),
		debrief.WithLogger(s.logger),
	)
}

// renderPage builds the form for uctx and renders it. fieldErrs become inline
// messages next to the failing fields only.
func (s *Server) renderPage(c *gin.Context, status int, uctx uischema.Context, fieldErrs debrief.FieldErrors, options render.RenderOptions) {
	form, err := s.forms.Form(uctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	options.Theme = s.theme
	if options.Submitted == nil {
		options.Hidden = render.MergeHiddenFields(options.Hidden, render.ContextHidden(uctx)...)
	}
	if len(fieldErrs) > 0 {
		mapping := render.MapFieldErrors(form, fieldErrs)
		options.Errors = mapping.Fields
		options.FormErrors = render.MergeFormErrors(options.FormErrors, mapping.Form...)
	}

	body, err := s.forms.Render(c.Request.Context(), form, "", options)
	if err != nil {
		s.fail(c, err)
		return
	}
	contentType, err := s.forms.ContentType("")
	if err != nil || strings.TrimSpace(contentType) == "" {
		contentType = "text/html; charset=utf-8"
	}
	c.Data(status, contentType, body)
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("debrief page failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "internal error")
}
