package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// ReportClient downloads sales reports from a running kiosk service.
type ReportClient struct {
	baseURL  string
	adminPIN string
	client   *http.Client
}

func NewReportClient(baseURL, adminPIN string) *ReportClient {
	return &ReportClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		adminPIN: adminPIN,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ReportClient) Fetch(ctx context.Context, period domain.Period) (domain.Report, error) {
	url := fmt.Sprintf("%s/admin/reports/%s", c.baseURL, strings.ToLower(string(period)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set(AdminPINHeader, c.adminPIN)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Report{}, fmt.Errorf("fetch report: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Report{}, fmt.Errorf("read report: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Report{}, fmt.Errorf("fetch report: kiosk answered %s", resp.Status)
	}

	report := domain.Report{
		Period:      period,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		report.Filename = params["filename"]
	}
	return report, nil
}
