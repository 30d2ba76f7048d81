package service

import (
	"context"
	"testing"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

func TestOverallStatus(t *testing.T) {
	op := domain.SystemService{Status: domain.ServiceStatusOperational}
	cases := []struct {
		name     string
		services []domain.SystemService
		want     domain.ServiceStatus
	}{
		{"empty", nil, domain.ServiceStatusOperational},
		{"all operational", []domain.SystemService{op, op}, domain.ServiceStatusOperational},
		{"maintenance degrades", []domain.SystemService{op, {Status: domain.ServiceStatusMaintenance}}, domain.ServiceStatusDegraded},
		{"partial outage degrades", []domain.SystemService{{Status: domain.ServiceStatusPartialOutage}}, domain.ServiceStatusDegraded},
		{"major outage wins", []domain.SystemService{{Status: domain.ServiceStatusDegraded}, {Status: domain.ServiceStatusMajorOutage}}, domain.ServiceStatusMajorOutage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overallStatus(tc.services); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func newCatalogFixture() *CatalogService {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	content := repository.CatalogContent{
		Services: []domain.Service{
			{ID: "s1", Slug: "siakad", Name: "SIAKAD", Category: domain.ServiceCategoryAcademic},
			{ID: "s2", Slug: "wifi-kampus", Name: "WiFi Kampus", Category: domain.ServiceCategoryNetwork},
		},
		Announcements: []domain.Announcement{
			{ID: "a1", Title: "Lama", PublishedAt: now.Add(-72 * time.Hour)},
			{ID: "a2", Title: "Baru", PublishedAt: now.Add(-time.Hour)},
			{ID: "a3", Title: "Penting", PublishedAt: now.Add(-96 * time.Hour), IsPinned: true},
			{ID: "a4", Title: "Kedaluwarsa", PublishedAt: now.Add(-2 * time.Hour), ExpiresAt: &expired},
		},
		FAQs: []domain.FAQ{
			{ID: "f2", Category: "Akun", Order: 2, IsActive: true},
			{ID: "f1", Category: "Jaringan", Order: 1, IsActive: true},
			{ID: "f3", Category: "Akun", Order: 3, IsActive: false},
		},
	}
	return NewCatalogService(repository.NewMemoryCatalogRepository(content), nil, func() time.Time { return now })
}

func TestAnnouncementsOrdering(t *testing.T) {
	svc := newCatalogFixture()
	got, err := svc.Announcements(context.Background(), AnnouncementQuery{})
	if err != nil {
		t.Fatalf("announcements: %v", err)
	}
	want := []string{"a3", "a2", "a1"}
	if len(got) != len(want) {
		t.Fatalf("got %d announcements want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, id)
		}
	}

	limited, _ := svc.Announcements(context.Background(), AnnouncementQuery{Limit: 1})
	if len(limited) != 1 || limited[0].ID != "a3" {
		t.Fatalf("limit not applied: %+v", limited)
	}
	pinned, _ := svc.Announcements(context.Background(), AnnouncementQuery{PinnedOnly: true})
	if len(pinned) != 1 {
		t.Fatalf("expected one pinned announcement")
	}
}

func TestFAQs(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	all, _ := svc.FAQs(ctx, "")
	if len(all) != 2 || all[0].ID != "f1" {
		t.Fatalf("unexpected faqs %+v", all)
	}
	akun, _ := svc.FAQs(ctx, "akun")
	if len(akun) != 1 || akun[0].ID != "f2" {
		t.Fatalf("category filter failed %+v", akun)
	}
	cats, _ := svc.FAQCategories(ctx)
	if len(cats) != 2 || cats[0] != "Jaringan" || cats[1] != "Akun" {
		t.Fatalf("unexpected categories %v", cats)
	}
}

func TestServices(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	network, _ := svc.Services(ctx, domain.ServiceCategoryNetwork)
	if len(network) != 1 || network[0].Slug != "wifi-kampus" {
		t.Fatalf("category filter failed %+v", network)
	}
	if _, err := svc.Service(ctx, "SIAKAD"); err != nil {
		t.Fatalf("slug lookup: %v", err)
	}
	if _, err := svc.Service(ctx, "tidak-ada"); !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmitContactValidates(t *testing.T) {
	svc := newCatalogFixture()
	err := svc.SubmitContact(context.Background(), validation.ContactInput{Name: "Ah", Email: "x"})
	if !apperrors.IsCode(err, "VALIDATION_ERROR") {
		t.Fatalf("expected validation error, got %v", err)
	}
	err = svc.SubmitContact(context.Background(), validation.ContactInput{
		Name:    "Ahmad Fauzi",
		Email:   "ahmad@umc.ac.id",
		Subject: "Pertanyaan VPN",
		Message: "Bagaimana cara mengakses VPN kampus dari rumah?",
	})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
}
