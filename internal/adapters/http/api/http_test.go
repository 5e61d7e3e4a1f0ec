package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/glorypath/internal/adapters/http/api"
	service "github.com/okian/glorypath/internal/app"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/model"
	"github.com/okian/glorypath/internal/domain/reference"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDependencies records the last selection it was asked for.
type mockDependencies struct {
	sel       filter.Selection
	athlete   string
	query     service.SportsQuery
	sportsErr error
	exportErr error
}

func (m *mockDependencies) Filters(_ context.Context, continents filter.Set[reference.Continent]) service.FilterOptions {
	m.sel = filter.Selection{Continents: continents}
	return service.FilterOptions{Sports: []string{"Judo"}}
}

func (m *mockDependencies) Overview(_ context.Context, sel filter.Selection) service.Overview {
	m.sel = sel
	return service.Overview{Standings: []service.StandingRow{{Rank: 1, NOC: "USA", Gold: 40, Total: 40}}}
}

func (m *mockDependencies) Global(_ context.Context, sel filter.Selection) service.Global {
	m.sel = sel
	return service.Global{}
}

func (m *mockDependencies) Athletes(_ context.Context, sel filter.Selection, name string) service.Athletes {
	m.sel, m.athlete = sel, name
	return service.Athletes{Names: []string{name}}
}

func (m *mockDependencies) Sports(_ context.Context, sel filter.Selection, q service.SportsQuery) (service.Sports, error) {
	m.sel, m.query = sel, q
	if m.sportsErr != nil {
		return service.Sports{}, m.sportsErr
	}
	return service.Sports{Day: service.Day{Date: q.Date}}, nil
}

func (m *mockDependencies) Export(_ context.Context, w io.Writer, name string, sel filter.Selection) (int, error) {
	m.sel = sel
	if m.exportErr != nil {
		return 0, m.exportErr
	}
	if name != service.ExportMedals {
		return 0, fmt.Errorf("%w: %q", service.ErrUnknownExport, name)
	}
	_, _ = io.WriteString(w, "medal_type,country_code\nGold Medal,USA\n")
	return 1, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{}
		server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}})
		mux := http.NewServeMux()
		server.Register(context.Background(), mux)

		Convey("When the health endpoint is requested", func() {
			serve(mux, http.MethodGet, "/api/overview")
			w := serve(mux, http.MethodGet, "/healthz")

			Convey("Then Prometheus metrics are served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "glorypath_dashboard_http_requests_total")
			})
		})

		Convey("When the stats endpoint is requested", func() {
			w := serve(mux, http.MethodGet, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"started":true`)
		})

		Convey("When a page is requested without filters", func() {
			w := serve(mux, http.MethodGet, "/api/overview")

			Convey("Then the page is returned as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")
				var page service.Overview
				So(json.Unmarshal(w.Body.Bytes(), &page), ShouldBeNil)
				So(page.Standings[0].NOC, ShouldEqual, "USA")
			})

			Convey("And the selection restricts nothing", func() {
				So(deps.sel.Restricts(), ShouldBeFalse)
			})

			Convey("And a request id is assigned", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})
		})

		Convey("When a valid request id is supplied", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/global", nil)
			req.Header.Set(api.RequestIDHeader, "0b0f6c9e-2a51-4a8e-9d7e-3c6d7f0f2e11")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "0b0f6c9e-2a51-4a8e-9d7e-3c6d7f0f2e11")
		})

		Convey("When filters are repeated and comma separated", func() {
			w := serve(mux, http.MethodGet, "/api/global?country=USA,FRA&country=JPN&continent=Europe&medal=Gold")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.sel.Countries.Len(), ShouldEqual, 3)
			So(deps.sel.Continents.Allows(reference.Europe), ShouldBeTrue)
			So(deps.sel.MedalTypes.Allows(model.Gold), ShouldBeTrue)
			So(deps.sel.MedalTypes.Allows(model.Silver), ShouldBeFalse)
		})

		Convey("When the medal parameter is present but empty", func() {
			w := serve(mux, http.MethodGet, "/api/overview?medal=")

			Convey("Then every tier is still allowed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.sel.MedalTypes.Empty(), ShouldBeTrue)
				So(deps.sel.Tiers().Allows(model.Bronze), ShouldBeTrue)
			})
		})

		Convey("When the continent is unknown", func() {
			w := serve(mux, http.MethodGet, "/api/overview?continent=Atlantis")

			Convey("Then a JSON 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeError(w)
				So(body["code"], ShouldEqual, "bad_request")
				So(body["message"], ShouldStartWith, "api.get_overview: bad request:")
			})
		})

		Convey("When the medal tier is unknown", func() {
			w := serve(mux, http.MethodGet, "/api/athletes?medal=Platinum")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the filters endpoint is narrowed by continent", func() {
			w := serve(mux, http.MethodGet, "/api/filters?continent=Asia")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.sel.Continents.Allows(reference.Asia), ShouldBeTrue)
			So(deps.sel.Continents.Allows(reference.Europe), ShouldBeFalse)
		})

		Convey("When an athlete is requested", func() {
			w := serve(mux, http.MethodGet, "/api/athletes?athlete=RINER+Teddy")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.athlete, ShouldEqual, "RINER Teddy")
		})

		Convey("When the sports page is requested", func() {
			w := serve(mux, http.MethodGet, "/api/sports?date=2024-07-28&schedule_sport=Diving&events_sport=Judo&sport=Swimming")

			Convey("Then page-local parameters are passed through", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.query, ShouldResemble, service.SportsQuery{Date: "2024-07-28", ScheduleSport: "Diving", EventsSport: "Judo"})
				So(deps.sel.Sports.Allows("Swimming"), ShouldBeTrue)
			})
		})

		Convey("When the sports date is invalid", func() {
			deps.sportsErr = fmt.Errorf("%w: %q", service.ErrInvalidDate, "nope")
			w := serve(mux, http.MethodGet, "/api/sports?date=nope")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the sports page fails otherwise", func() {
			deps.sportsErr = fmt.Errorf("boom")
			w := serve(mux, http.MethodGet, "/api/sports")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decodeError(w)["code"], ShouldEqual, "internal_error")
		})

		Convey("When a page is requested with the wrong method", func() {
			w := serve(mux, http.MethodPost, "/api/overview")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When an export is downloaded", func() {
			w := serve(mux, http.MethodGet, "/api/export/medals.csv?medal=Gold")

			Convey("Then CSV is returned as an attachment", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/csv")
				So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="medals.csv"`)
				So(w.Body.String(), ShouldStartWith, "medal_type,country_code\n")
				So(deps.sel.MedalTypes.Allows(model.Gold), ShouldBeTrue)
			})
		})

		Convey("When an unknown export is requested", func() {
			w := serve(mux, http.MethodGet, "/api/export/coaches.csv")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decodeError(w)["code"], ShouldEqual, "not_found")
		})

		Convey("When the export path has no csv suffix", func() {
			w := serve(mux, http.MethodGet, "/api/export/medals")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When an export fails", func() {
			deps.exportErr = fmt.Errorf("disk full")
			w := serve(mux, http.MethodGet, "/api/export/medals.csv")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a handler behind the request id middleware", t, func() {
		var seen string
		h := api.RequestID(func(w http.ResponseWriter, r *http.Request) {
			seen = api.RequestIDFrom(r.Context())
		})

		Convey("When the caller sends an invalid id", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(api.RequestIDHeader, "not-a-uuid")
			w := httptest.NewRecorder()
			h(w, req)

			Convey("Then a fresh id reaches the handler and the response", func() {
				So(seen, ShouldNotEqual, "not-a-uuid")
				So(len(seen), ShouldEqual, 36)
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, seen)
			})
		})

		Convey("When no middleware ran", func() {
			So(api.RequestIDFrom(context.Background()), ShouldBeEmpty)
		})
	})
}
