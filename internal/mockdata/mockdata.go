// Package mockdata holds the portal's starter content: sample tickets, assets, the
// service catalog, system status, announcements, FAQs and staff accounts.
package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

var seedNamespace = uuid.MustParse("5b0b5d1e-2f4a-4b8e-9d4f-0c1e6a7b8c9d")

// ID derives a stable UUID so reseeding a database is idempotent.
func ID(kind, key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key)).String()
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// Tickets returns the sample tickets including their activity trails.
func Tickets() []domain.Ticket {
	t1 := ID("ticket", "1")
	return []domain.Ticket{
		{
			ID:           t1,
			TicketNumber: "TKT-20260201-1234",
			Category:     domain.TicketCategoryNetwork,
			Priority:     domain.TicketPriorityHigh,
			Status:       domain.TicketStatusInProgress,
			Subject:      "Tidak bisa akses internet di Gedung A lantai 2",
			Description:  "Sejak pagi ini tidak bisa mengakses internet. Sudah coba restart komputer dan modem tetapi tetap tidak bisa. Kondisi ini mengganggu pekerjaan karena tidak bisa akses SIAKAD dan email.",
			Reporter: domain.Reporter{
				Name:  "Ahmad Fauzi",
				Email: "ahmad.fauzi@umc.ac.id",
				Phone: ptr("081234567890"),
				Unit:  ptr("Fakultas Teknik"),
			},
			Assignee:    &domain.Assignee{ID: "tech-001", Name: "Budi Santoso", Email: ptr("budi.santoso@umc.ac.id")},
			SLADeadline: ts("2026-02-01T16:00:00Z"),
			CreatedAt:   ts("2026-02-01T08:30:00Z"),
			UpdatedAt:   ts("2026-02-01T10:15:00Z"),
			Activities: []domain.TicketActivity{
				{ID: ID("activity", "1-1"), TicketID: t1, Type: domain.ActivityCreated, Description: "Tiket dibuat", UserName: ptr("Ahmad Fauzi"), CreatedAt: ts("2026-02-01T08:30:00Z")},
				{ID: ID("activity", "1-2"), TicketID: t1, Type: domain.ActivityAssigned, Description: "Tiket ditugaskan ke Budi Santoso", UserName: ptr(domain.SystemActor), NewValue: ptr("Budi Santoso"), CreatedAt: ts("2026-02-01T08:35:00Z")},
				{ID: ID("activity", "1-3"), TicketID: t1, Type: domain.ActivityStatusChanged, Description: "Status diubah dari Menunggu ke Diproses", UserName: ptr("Budi Santoso"), OldValue: ptr("open"), NewValue: ptr("in_progress"), CreatedAt: ts("2026-02-01T09:00:00Z")},
				{ID: ID("activity", "1-4"), TicketID: t1, Type: domain.ActivityComment, Description: "Sedang melakukan pengecekan di lokasi. Kemungkinan ada masalah pada switch di lantai 2.", UserName: ptr("Budi Santoso"), CreatedAt: ts("2026-02-01T10:15:00Z")},
			},
		},
		{
			ID:           ID("ticket", "2"),
			TicketNumber: "TKT-20260201-1235",
			Category:     domain.TicketCategoryEmail,
			Priority:     domain.TicketPriorityMedium,
			Status:       domain.TicketStatusOpen,
			Subject:      "Tidak bisa login ke email institusi",
			Description:  "Saya tidak bisa login ke email institusi menggunakan akun yang sudah diberikan. Muncul pesan 'Invalid credentials'. Sudah coba reset password tapi tidak berhasil.",
			Reporter: domain.Reporter{
				Name:  "Siti Nurhaliza",
				Email: "siti.nurhaliza@student.umc.ac.id",
				Phone: ptr("082345678901"),
				Unit:  ptr("Fakultas Ekonomi"),
			},
			SLADeadline: ts("2026-02-02T08:00:00Z"),
			CreatedAt:   ts("2026-02-01T14:00:00Z"),
			UpdatedAt:   ts("2026-02-01T14:00:00Z"),
			Activities:  createdOnly("2", "Siti Nurhaliza", "2026-02-01T14:00:00Z"),
		},
		{
			ID:           ID("ticket", "3"),
			TicketNumber: "TKT-20260131-1233",
			Category:     domain.TicketCategoryHardware,
			Priority:     domain.TicketPriorityLow,
			Status:       domain.TicketStatusResolved,
			Subject:      "Printer di ruang admin tidak bisa print",
			Description:  "Printer HP LaserJet di ruang admin lantai 1 tidak merespon saat dikirim perintah print. Lampu indikator menyala normal.",
			Reporter: domain.Reporter{
				Name:  "Dedi Kurniawan",
				Email: "dedi.kurniawan@umc.ac.id",
				Phone: ptr("083456789012"),
				Unit:  ptr("BAK"),
			},
			Assignee:    &domain.Assignee{ID: "tech-002", Name: "Andi Wijaya"},
			SLADeadline: ts("2026-02-03T08:00:00Z"),
			SLAMet:      ptr(true),
			CreatedAt:   ts("2026-01-31T09:00:00Z"),
			UpdatedAt:   ts("2026-01-31T15:30:00Z"),
			ResolvedAt:  ptr(ts("2026-01-31T15:30:00Z")),
			Activities:  createdOnly("3", "Dedi Kurniawan", "2026-01-31T09:00:00Z"),
		},
		{
			ID:           ID("ticket", "4"),
			TicketNumber: "TKT-20260130-1232",
			Category:     domain.TicketCategorySiakad,
			Priority:     domain.TicketPriorityUrgent,
			Status:       domain.TicketStatusEscalated,
			Subject:      "Data KRS tidak muncul di SIAKAD",
			Description:  "Sudah melakukan pengisian KRS minggu lalu tapi data tidak muncul di sistem. Padahal sudah disetujui dosen wali. Ini urgent karena sudah mendekati batas waktu.",
			Reporter: domain.Reporter{
				Name:  "Rizki Pratama",
				Email: "rizki.pratama@student.umc.ac.id",
				Phone: ptr("084567890123"),
				Unit:  ptr("Fakultas Teknik"),
			},
			Assignee:    &domain.Assignee{ID: "tech-003", Name: "Candra Lesmana"},
			SLADeadline: ts("2026-01-30T12:00:00Z"),
			SLAMet:      ptr(false),
			CreatedAt:   ts("2026-01-30T08:00:00Z"),
			UpdatedAt:   ts("2026-01-30T14:00:00Z"),
			EscalatedAt: ptr(ts("2026-01-30T14:00:00Z")),
			Activities:  createdOnly("4", "Rizki Pratama", "2026-01-30T08:00:00Z"),
		},
		{
			ID:           ID("ticket", "5"),
			TicketNumber: "TKT-20260129-1231",
			Category:     domain.TicketCategorySoftware,
			Priority:     domain.TicketPriorityMedium,
			Status:       domain.TicketStatusClosed,
			Subject:      "Instalasi Microsoft Office di Lab Komputer",
			Description:  "Mohon bantuan untuk instalasi Microsoft Office di 20 unit komputer Lab Komputer 1 untuk keperluan praktikum.",
			Reporter: domain.Reporter{
				Name:  "Dr. Hendra Gunawan",
				Email: "hendra.gunawan@umc.ac.id",
				Phone: ptr("085678901234"),
				Unit:  ptr("Fakultas Teknik"),
			},
			Assignee:    &domain.Assignee{ID: "tech-001", Name: "Budi Santoso"},
			SLADeadline: ts("2026-01-31T08:00:00Z"),
			SLAMet:      ptr(true),
			CreatedAt:   ts("2026-01-29T10:00:00Z"),
			UpdatedAt:   ts("2026-01-30T16:00:00Z"),
			ResolvedAt:  ptr(ts("2026-01-30T14:00:00Z")),
			ClosedAt:    ptr(ts("2026-01-30T16:00:00Z")),
			Activities:  createdOnly("5", "Dr. Hendra Gunawan", "2026-01-29T10:00:00Z"),
		},
	}
}

func createdOnly(key, reporter, at string) []domain.TicketActivity {
	return []domain.TicketActivity{{
		ID:          ID("activity", key+"-1"),
		TicketID:    ID("ticket", key),
		Type:        domain.ActivityCreated,
		Description: "Tiket dibuat",
		UserName:    ptr(reporter),
		CreatedAt:   ts(at),
	}}
}

// Assets returns the sample asset catalog.
func Assets() []domain.Asset {
	created := ts("2025-08-01T00:00:00Z")
	asset := func(code, name string, cat domain.AssetCategory, status domain.AssetStatus, location, specs, brand string) domain.Asset {
		return domain.Asset{
			ID:             ID("asset", code),
			AssetCode:      code,
			Name:           name,
			Category:       cat,
			Brand:          ptr(brand),
			Specifications: ptr(specs),
			Location:       location,
			Status:         status,
			Condition:      domain.AssetConditionGood,
			CreatedAt:      created,
			UpdatedAt:      created,
		}
	}
	return []domain.Asset{
		asset("LPT-001", "Laptop Asus ROG", domain.AssetCategoryLaptop, domain.AssetStatusAvailable, "Ruang Pusdatin", "Intel i7, 16GB RAM, RTX 3060", "Asus"),
		asset("LPT-002", "Laptop HP Pavilion", domain.AssetCategoryLaptop, domain.AssetStatusBorrowed, "Ruang Pusdatin", "Intel i5, 8GB RAM", "HP"),
		asset("PRJ-001", "Proyektor Epson EB-X51", domain.AssetCategoryProjector, domain.AssetStatusAvailable, "Gudang A", "3800 Lumens, XGA", "Epson"),
		asset("MON-001", "Monitor LG 27 inch", domain.AssetCategoryMonitor, domain.AssetStatusAvailable, "Ruang Pusdatin", "27 inch, 4K UHD", "LG"),
		asset("PRT-001", "Printer HP LaserJet", domain.AssetCategoryPrinter, domain.AssetStatusMaintenance, "Ruang Pusdatin", "Laser, B/W", "HP"),
	}
}

// BorrowRequests returns the sample borrow history.
func BorrowRequests() []domain.BorrowRequest {
	borrower := domain.Borrower{
		Name:  "Ahmad Fauzi",
		Email: "ahmad.fauzi@umc.ac.id",
		Phone: "081234567890",
		Unit:  "Fakultas Teknik",
	}
	return []domain.BorrowRequest{
		{
			ID:                 ID("borrow", "1"),
			RequestNumber:      "BRW-20260130-0001",
			AssetID:            ID("asset", "LPT-002"),
			Borrower:           borrower,
			Purpose:            "Presentasi proyek akhir",
			BorrowDate:         ts("2026-02-01T00:00:00Z"),
			ExpectedReturnDate: ts("2026-02-05T00:00:00Z"),
			Status:             domain.BorrowStatusApproved,
			ApprovedBy:         ptr("Admin Aset"),
			CreatedAt:          ts("2026-01-30T09:00:00Z"),
			UpdatedAt:          ts("2026-01-30T13:00:00Z"),
		},
		{
			ID:                 ID("borrow", "2"),
			RequestNumber:      "BRW-20260123-0002",
			AssetID:            ID("asset", "PRJ-001"),
			Borrower:           borrower,
			Purpose:            "Seminar nasional",
			BorrowDate:         ts("2026-01-25T00:00:00Z"),
			ExpectedReturnDate: ts("2026-01-26T00:00:00Z"),
			ActualReturnDate:   ptr(ts("2026-01-26T00:00:00Z")),
			Status:             domain.BorrowStatusReturned,
			ApprovedBy:         ptr("Admin Aset"),
			CreatedAt:          ts("2026-01-23T10:00:00Z"),
			UpdatedAt:          ts("2026-01-26T15:00:00Z"),
		},
	}
}

// SeedUser is a starter account with a plaintext password to be hashed at seed time.
type SeedUser struct {
	User     domain.User
	Password string
}

// Users returns the starter accounts.
func Users() []SeedUser {
	created := ts("2024-01-01T00:00:00Z")
	user := func(username, email, name string, role domain.UserRole, unit, password string) SeedUser {
		return SeedUser{
			User: domain.User{
				ID:        ID("user", username),
				Username:  username,
				Email:     email,
				Name:      name,
				Role:      role,
				Status:    domain.UserStatusActive,
				Unit:      ptr(unit),
				CreatedAt: created,
				UpdatedAt: created,
			},
			Password: password,
		}
	}
	return []SeedUser{
		user("admin", "pusdatin@umc.ac.id", "Administrator Pusdatin", domain.UserRoleSuperAdmin, "Pusdatin", "admin123"),
		user("helpdesk", "helpdesk@umc.ac.id", "Budi Santoso", domain.UserRoleAdminHelpdesk, "Pusdatin", "helpdesk123"),
		user("aset", "aset@umc.ac.id", "Admin Aset", domain.UserRoleAdminAsset, "Pusdatin", "aset123"),
		user("ahmad.fauzi", "ahmad.fauzi@umc.ac.id", "Ahmad Fauzi", domain.UserRoleDosen, "Fakultas Teknik", "password123"),
	}
}
