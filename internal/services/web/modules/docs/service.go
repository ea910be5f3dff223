package docs

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/clidocs/internal/content"
	platformi18n "github.com/louisbranch/clidocs/internal/platform/i18n"
	"github.com/louisbranch/clidocs/internal/render"
	"github.com/louisbranch/clidocs/internal/services/shared/i18nhttp"
	module "github.com/louisbranch/clidocs/internal/services/web/module"
	apperrors "github.com/louisbranch/clidocs/internal/services/web/platform/errors"
	"github.com/louisbranch/clidocs/internal/services/web/platform/observability"
	"github.com/louisbranch/clidocs/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clidocs/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/louisbranch/clidocs/internal/services/web/modules/docs"

type service struct {
	store    *content.Store
	siteName string
	logger   *zap.Logger
	metrics  *observability.Metrics
	tracer   trace.Tracer
}

// pageView is everything a handler needs to write one documentation page.
type pageView struct {
	// chrome is the locale of the navigation, switcher and site strings.
	chrome          platformi18n.Locale
	contentLanguage string
	layout          webtemplates.LayoutData
	body            templ.Component
}

func newService(deps module.Dependencies) service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return service{
		store:    deps.Store,
		siteName: deps.SiteName,
		logger:   logger,
		metrics:  deps.Metrics,
		tracer:   tracer,
	}
}

// page resolves and renders pageID for the requested locale value.
func (s service) page(ctx context.Context, pageID string, requested string) (pageView, error) {
	_, span := s.tracer.Start(ctx, "docs.render_page", trace.WithAttributes(
		attribute.String("docs.page", pageID),
		attribute.String("docs.locale.requested", requested),
	))
	defer span.End()

	page, ok := s.store.Page(pageID)
	if !ok {
		err := apperrors.EK(apperrors.KindNotFound, "site.not_found_title", "page not found")
		span.SetStatus(codes.Error, err.Error())
		return pageView{}, err
	}
	record, resolution := page.ResolveDetailed(requested)
	span.SetAttributes(
		attribute.String("docs.locale.served", resolution.Served.String()),
		attribute.Bool("docs.locale.fallback", resolution.Fallback),
	)
	s.metrics.ObserveRender(pageID, resolution.Served.String(), resolution.Fallback)
	if resolution.Fallback {
		s.logger.Debug("locale fallback",
			zap.String("page", pageID),
			zap.String("requested", requested),
			zap.String("served", resolution.Served.String()),
		)
	}

	chrome := resolution.Matched
	if !resolution.Supported {
		chrome = platformi18n.Default()
	}
	doc := render.Build(record)
	return pageView{
		chrome:          chrome,
		contentLanguage: resolution.Served.String(),
		layout: webtemplates.LayoutData{
			Lang:       chrome.String(),
			Title:      record.Title,
			SiteName:   s.siteName,
			HomeHref:   routepath.Page(chrome, routepath.HomePage),
			Stylesheet: routepath.Stylesheet,
			Nav:        s.nav(chrome, pageID),
			Languages: i18nhttp.BuildLanguageOptions(chrome, func(locale platformi18n.Locale) string {
				return routepath.Page(locale, pageID)
			}),
			TOC: toc(doc),
		},
		body: render.Component(doc),
	}, nil
}

func (s service) nav(locale platformi18n.Locale, activePage string) []webtemplates.NavItem {
	pages := s.store.Pages()
	items := make([]webtemplates.NavItem, 0, len(pages))
	for _, pageID := range pages {
		record, ok := s.store.Resolve(pageID, locale.String())
		if !ok {
			continue
		}
		items = append(items, webtemplates.NavItem{
			Title:  record.Title,
			Href:   routepath.Page(locale, pageID),
			Active: pageID == activePage,
		})
	}
	return items
}

func toc(doc render.Document) []webtemplates.TOCItem {
	headings := doc.Headings()
	items := make([]webtemplates.TOCItem, 0, len(headings))
	for _, heading := range headings {
		items = append(items, webtemplates.TOCItem{ID: heading.ID, Title: heading.Title})
	}
	return items
}
