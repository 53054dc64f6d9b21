package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/location"
	"github.com/zrashid/salahboard/internal/model"
	"github.com/zrashid/salahboard/internal/prayer"
)

type PrayerPages struct {
	resolver *location.Resolver
	prayers  *prayer.Client
	method   int
}

func NewPrayerPages(resolver *location.Resolver, prayers *prayer.Client, method int) *PrayerPages {
	return &PrayerPages{resolver: resolver, prayers: prayers, method: method}
}

// PagesModule mounts the timings and calendar pages (session required).
func PagesModule(ctl *PrayerPages) Module {
	return ModuleFunc(func(c *Controller) {
		c.GET("/", ctl.home)
		c.GET("/calendar", ctl.monthlyCalendar)
	})
}

// GET /
func (p *PrayerPages) home(c *gin.Context) {
	ctx := c.Request.Context()
	loc := p.resolver.Resolve(ctx)

	timings, err := p.prayers.GetTimings(ctx, loc.City, loc.Country, p.method)
	if err != nil {
		log.Error().Err(err).Str("city", loc.City).Msg("failed to fetch prayer timings")
		c.HTML(http.StatusBadGateway, "index.html", model.TimingsPageData{
			City:    loc.City,
			Country: loc.Country,
			Error:   "Prayer times are unavailable right now, please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", model.TimingsPageData{
		City:    loc.City,
		Country: loc.Country,
		Date:    time.Now().Format("02 January 2006"),
		Timings: timings,
	})
}

// GET /calendar
func (p *PrayerPages) monthlyCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	loc := p.resolver.Resolve(ctx)

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	days, err := p.prayers.GetMonthCalendar(ctx, loc.City, loc.Country, p.method, month, year)
	if err != nil {
		log.Error().Err(err).Str("city", loc.City).Msg("failed to fetch month calendar")
		c.HTML(http.StatusBadGateway, "calendar.html", model.CalendarPageData{
			City:    loc.City,
			Country: loc.Country,
			Month:   now.Month().String(),
			Year:    year,
			Error:   "The monthly calendar is unavailable right now, please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "calendar.html", model.CalendarPageData{
		City:    loc.City,
		Country: loc.Country,
		Month:   now.Month().String(),
		Year:    year,
		Days:    days,
	})
}
