package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev1-one/svitloe/internal/dal"
)

const todayMarkup = `<div><p>07.11.2025</p><ul>` +
	`<li data-id="1.1">08:00-11:00</li>` +
	`<li data-id="1.2"></li>` +
	`<li data-id="2.2">14:30-17:00, 21:30-24:00</li>` +
	`</ul></div>`

const tomorrowMarkup = `<div><p>08.11.2025</p><ul>` +
	`<li data-id="1.1">10:00-13:00</li>` +
	`</ul></div>`

func TestLOEClient_FetchMenu(t *testing.T) {
	menu := menuResponse{
		MenuItems: []menuItem{
			{Name: "GPV", ImageURL: "media/gpv/first.png", Content: todayMarkup},
			{Name: "Tomorrow", Content: tomorrowMarkup},
			{Name: "Arhiv", Children: []menuItem{
				{ImageURL: "media/gpv/old.png"},
				{ImageURL: "media/gpv/latest.png"},
			}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, menuPath, r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(menu))
	}))
	defer srv.Close()

	got, err := NewLOEClient(srv.URL).FetchMenu(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "media/gpv/latest.png", got.ImageRef)
	assert.Equal(t, srv.URL+"/media/gpv/latest.png", got.ImageURL)
	assert.Equal(t, []dal.Group{
		{ID: "1.1", Date: "07.11.2025", Schedule: "08:00-11:00"},
		{ID: "1.2", Date: "07.11.2025", Schedule: ""},
		{ID: "2.2", Date: "07.11.2025", Schedule: "14:30-17:00, 21:30-24:00"},
	}, got.Today)
	assert.Equal(t, []dal.Group{
		{ID: "1.1", Date: "08.11.2025", Schedule: "10:00-13:00"},
	}, got.Tomorrow)
}

func TestLOEClient_FetchMenu_ImageFallback(t *testing.T) {
	// no archive item: the first menu item's own image is the reference
	menu := menuResponse{
		MenuItems: []menuItem{
			{Name: "GPV", ImageURL: "media/gpv/only.png", Content: todayMarkup},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(menu))
	}))
	defer srv.Close()

	got, err := NewLOEClient(srv.URL).FetchMenu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "media/gpv/only.png", got.ImageRef)
	assert.Empty(t, got.Tomorrow)
}

func TestLOEClient_FetchMenu_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "empty_menu",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(t, json.NewEncoder(w).Encode(menuResponse{}))
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrNoScheduleImage, i...)
			},
		},
		{
			name: "no_image_anywhere",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(t, json.NewEncoder(w).Encode(menuResponse{
					MenuItems: []menuItem{{Name: "GPV", Content: todayMarkup}},
				}))
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrNoScheduleImage, i...)
			},
		},
		{
			name: "bad_status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: assert.Error,
		},
		{
			name: "not_json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("maintenance page"))
			},
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewLOEClient(srv.URL).FetchMenu(context.Background())
			tt.wantErr(t, err)
		})
	}
}

func TestParseScheduleMarkup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []dal.Group
	}{
		{
			name:   "valid",
			markup: todayMarkup,
			want: []dal.Group{
				{ID: "1.1", Date: "07.11.2025", Schedule: "08:00-11:00"},
				{ID: "1.2", Date: "07.11.2025", Schedule: ""},
				{ID: "2.2", Date: "07.11.2025", Schedule: "14:30-17:00, 21:30-24:00"},
			},
		},
		{name: "empty", markup: "", want: nil},
		{name: "no_date", markup: `<ul><li data-id="1.1">08:00-11:00</li></ul>`, want: nil},
		{name: "no_groups", markup: `<p>07.11.2025</p>`, want: nil},
		{
			name:   "blank_data_id_skipped",
			markup: `<p>07.11.2025</p><ul><li data-id=" ">08:00-11:00</li><li data-id="1.1">09:00-10:00</li></ul>`,
			want: []dal.Group{
				{ID: "1.1", Date: "07.11.2025", Schedule: "09:00-10:00"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseScheduleMarkup(tt.markup))
		})
	}
}
