package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dev1-one/svitloe/internal/dal"
)

const (
	loeTimeout  = 15 * time.Second
	menuPath    = "/api/menus/9"
	archiveItem = "Arhiv"
	nextDayItem = "Tomorrow"
)

var ErrNoScheduleImage = errors.New("no schedule image in menu")

// Menu is the utility's published state at one scrape: the URL of the latest
// schedule graphic plus per-group schedules parsed from the menu items'
// markup (today, and tomorrow when already published).
type Menu struct {
	// ImageRef is the relative path as published; scrapes are deduplicated
	// against it. ImageURL is the absolute form used for delivery.
	ImageRef string
	ImageURL string

	Today    []dal.Group
	Tomorrow []dal.Group
}

// LOEClient fetches the outage-schedule menu from the utility's public API.
type LOEClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewLOEClient(baseURL string) *LOEClient {
	return &LOEClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: loeTimeout},
	}
}

type menuResponse struct {
	MenuItems []menuItem `json:"menuItems"`
}

type menuItem struct {
	Name     string     `json:"name"`
	ImageURL string     `json:"imageUrl"`
	Content  string     `json:"content"`
	Children []menuItem `json:"children"`
}

// FetchMenu loads the menu endpoint and extracts the newest schedule graphic
// reference together with the schedule markup of the menu items.
func (c *LOEClient) FetchMenu(ctx context.Context) (Menu, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+menuPath, nil)
	if err != nil {
		return Menu{}, fmt.Errorf("build menu request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Menu{}, fmt.Errorf("get menu: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Menu{}, fmt.Errorf("get menu: status=%s", resp.Status)
	}

	var data menuResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Menu{}, fmt.Errorf("decode menu: %w", err)
	}
	if len(data.MenuItems) == 0 {
		return Menu{}, ErrNoScheduleImage
	}

	ref := imageRef(data.MenuItems)
	if ref == "" {
		return Menu{}, ErrNoScheduleImage
	}

	res := Menu{
		ImageRef: ref,
		ImageURL: c.baseURL + "/" + strings.TrimPrefix(ref, "/"),
		Today:    parseScheduleMarkup(data.MenuItems[0].Content),
	}

	for _, item := range data.MenuItems {
		if item.Name == nextDayItem {
			res.Tomorrow = parseScheduleMarkup(item.Content)
			break
		}
	}

	return res, nil
}

// imageRef picks the newest graphic: the last child of the archive item,
// falling back to the first menu item's own image.
func imageRef(items []menuItem) string {
	for _, item := range items {
		if item.Name != archiveItem {
			continue
		}
		if len(item.Children) == 0 {
			break
		}
		return item.Children[len(item.Children)-1].ImageURL
	}
	return items[0].ImageURL
}

// parseScheduleMarkup extracts per-group schedules from a menu item's HTML:
// the date from the first <p>, one group per li[data-id] with the schedule
// string as its text. Malformed markup degrades to an empty result.
func parseScheduleMarkup(markup string) []dal.Group {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	date := strings.TrimSpace(doc.Find("p").First().Text())
	if date == "" {
		return nil
	}

	var groups []dal.Group
	doc.Find("li[data-id]").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("data-id")
		if !ok || strings.TrimSpace(id) == "" {
			return
		}
		groups = append(groups, dal.Group{
			ID:       strings.TrimSpace(id),
			Date:     date,
			Schedule: strings.TrimSpace(s.Text()),
		})
	})

	return groups
}
