package mockdata

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// Services returns the IT service catalog.
func Services() []domain.Service {
	created := ts("2024-01-01T00:00:00Z")
	updated := ts("2026-02-01T00:00:00Z")
	svc := func(s domain.Service) domain.Service {
		s.ID = ID("service", s.Slug)
		s.CreatedAt = created
		s.UpdatedAt = updated
		return s
	}
	return []domain.Service{
		svc(domain.Service{
			Slug:              "helpdesk",
			Name:              "Helpdesk & Ticketing",
			Description:       "Layanan dukungan teknis untuk seluruh civitas akademika. Sampaikan kendala IT Anda dan tim kami akan segera menangani.",
			Category:          domain.ServiceCategoryAdministration,
			Status:            domain.ServiceStatusOperational,
			SLAResponseTime:   ptr("4 jam"),
			SLAResolutionTime: ptr("24 jam"),
			UptimePercentage:  ptr(99.9),
			Features: []string{
				"Pelaporan masalah berbasis tiket",
				"Tracking status penanganan real-time",
				"Notifikasi email dan WhatsApp",
				"SLA monitoring",
				"Eskalasi otomatis",
			},
			Procedures: []string{
				"Buat tiket melalui portal atau email ke pusdatin@umc.ac.id",
				"Dapatkan nomor tiket sebagai referensi",
				"Pantau status tiket melalui portal",
				"Berikan feedback setelah masalah terselesaikan",
			},
		}),
		svc(domain.Service{
			Slug:              "sso",
			Name:              "Single Sign-On (SSO)",
			Description:       "Sistem autentikasi terpusat untuk akses ke seluruh aplikasi kampus dengan satu akun.",
			Category:          domain.ServiceCategoryAdministration,
			Status:            domain.ServiceStatusOperational,
			SLAResponseTime:   ptr("1 jam"),
			SLAResolutionTime: ptr("4 jam"),
			UptimePercentage:  ptr(99.95),
			Features: []string{
				"Satu akun untuk semua aplikasi",
				"Integrasi LDAP/OAuth2",
				"Password policy standar keamanan",
				"Multi-factor authentication (opsional)",
				"Sinkronisasi otomatis dengan SIAKAD",
			},
			Requirements: []string{
				"Terdaftar sebagai mahasiswa/dosen/tendik aktif",
				"Email institusi yang valid",
				"Browser modern (Chrome, Firefox, Safari, Edge)",
			},
		}),
		svc(domain.Service{
			Slug:             "siakad",
			Name:             "SIAKAD",
			Description:      "Sistem Informasi Akademik untuk pengelolaan data akademik mahasiswa, KRS, nilai, dan jadwal perkuliahan.",
			Category:         domain.ServiceCategoryAcademic,
			Status:           domain.ServiceStatusOperational,
			URL:              ptr("https://siakad.umc.ac.id"),
			UptimePercentage: ptr(99.8),
			Features: []string{
				"Pengisian KRS online",
				"Kartu hasil studi (KHS)",
				"Jadwal perkuliahan",
				"Informasi pembayaran",
				"Transkrip akademik",
			},
		}),
		svc(domain.Service{
			Slug:             "lms",
			Name:             "Learning Management System",
			Description:      "Platform pembelajaran daring untuk perkuliahan online, materi, tugas, dan kuis.",
			Category:         domain.ServiceCategoryLearning,
			Status:           domain.ServiceStatusOperational,
			URL:              ptr("https://lms.umc.ac.id"),
			UptimePercentage: ptr(99.7),
			Features: []string{
				"Materi perkuliahan digital",
				"Pengumpulan tugas online",
				"Kuis dan ujian online",
				"Forum diskusi",
				"Video conference terintegrasi",
			},
		}),
		svc(domain.Service{
			Slug:             "email",
			Name:             "Email Institusi",
			Description:      "Layanan email resmi institusi untuk komunikasi akademik dan administratif.",
			Category:         domain.ServiceCategoryCommunication,
			Status:           domain.ServiceStatusOperational,
			URL:              ptr("https://mail.umc.ac.id"),
			UptimePercentage: ptr(99.9),
			Features: []string{
				"Kapasitas penyimpanan besar",
				"Kalender terintegrasi",
				"Video conference",
				"File sharing",
				"Mobile app support",
			},
		}),
		svc(domain.Service{
			Slug:             "jaringan",
			Name:             "Jaringan & Internet",
			Description:      "Layanan konektivitas internet dan jaringan di seluruh area kampus.",
			Category:         domain.ServiceCategoryNetwork,
			Status:           domain.ServiceStatusOperational,
			UptimePercentage: ptr(99.5),
			Features: []string{
				"WiFi seluruh area kampus",
				"Bandwidth dedicated",
				"Akses ke jurnal internasional",
				"VPN untuk akses remote",
			},
		}),
		svc(domain.Service{
			Slug:            "aset-ti",
			Name:            "Manajemen Aset TI",
			Description:     "Layanan peminjaman dan pengelolaan aset TI kampus seperti laptop, proyektor, dan peralatan lainnya.",
			Category:        domain.ServiceCategoryAdministration,
			Status:          domain.ServiceStatusOperational,
			SLAResponseTime: ptr("24 jam"),
			Features: []string{
				"Katalog aset online",
				"Peminjaman aset online",
				"Tracking dengan QR code",
				"Riwayat peminjaman",
				"Jadwal maintenance",
			},
			Procedures: []string{
				"Cek ketersediaan aset di katalog",
				"Ajukan peminjaman melalui portal",
				"Tunggu persetujuan admin",
				"Ambil aset di lokasi yang ditentukan",
				"Kembalikan tepat waktu",
			},
		}),
		svc(domain.Service{
			Slug:            "pengembangan-aplikasi",
			Name:            "Pengembangan Aplikasi",
			Description:     "Layanan pengajuan pengembangan aplikasi atau fitur baru untuk kebutuhan unit kerja.",
			Category:        domain.ServiceCategoryAdministration,
			Status:          domain.ServiceStatusOperational,
			SLAResponseTime: ptr("3 hari kerja"),
			Features: []string{
				"Pengajuan aplikasi baru",
				"Permintaan fitur tambahan",
				"Konsultasi teknis",
				"Dokumentasi API",
			},
			Procedures: []string{
				"Ajukan proposal pengembangan",
				"Konsultasi dengan tim Pusdatin",
				"Review dan persetujuan",
				"Development dan testing",
				"Deployment dan pelatihan",
			},
		}),
	}
}

// SystemServices returns the status board. The WiFi incident started two hours before now.
func SystemServices(now time.Time) []domain.SystemService {
	return []domain.SystemService{
		{ID: "siakad", Name: "SIAKAD Online", Description: "Sistem Informasi Akademik", Status: domain.ServiceStatusOperational, Uptime: 99.95},
		{ID: "lms", Name: "Learning Management System", Description: "E-Learning Platform", Status: domain.ServiceStatusOperational, Uptime: 99.8},
		{ID: "email", Name: "Email Institusi", Description: "Mail dengan domain @umc.ac.id", Status: domain.ServiceStatusOperational, Uptime: 99.99},
		{ID: "sso", Name: "Single Sign-On", Description: "Autentikasi terpusat", Status: domain.ServiceStatusOperational, Uptime: 99.95},
		{
			ID:          "wifi",
			Name:        "WiFi Kampus",
			Description: "Jaringan wireless kampus",
			Status:      domain.ServiceStatusDegraded,
			Uptime:      98.5,
			Incident: &domain.Incident{
				Title:     "Performa menurun di Gedung B",
				Message:   "Terjadi penurunan kecepatan WiFi di area Gedung B lantai 2-3. Tim sedang melakukan pengecekan.",
				StartedAt: now.Add(-2 * time.Hour),
			},
		},
		{ID: "website", Name: "Website UMC", Description: "Portal resmi kampus", Status: domain.ServiceStatusOperational, Uptime: 99.9},
		{ID: "helpdesk", Name: "Helpdesk Portal", Description: "Sistem ticketing IT", Status: domain.ServiceStatusOperational, Uptime: 99.95},
		{ID: "cloud", Name: "Cloud Storage", Description: "Penyimpanan cloud kampus", Status: domain.ServiceStatusOperational, Uptime: 99.8},
	}
}

// Announcements returns published notices.
func Announcements() []domain.Announcement {
	return []domain.Announcement{
		{
			ID:          ID("announcement", "1"),
			Title:       "Maintenance Server SIAKAD",
			Content:     "Dalam rangka peningkatan layanan, akan dilakukan maintenance server SIAKAD pada hari Sabtu, 8 Februari 2026 pukul 22:00 - 02:00 WIB. Selama maintenance, layanan SIAKAD tidak dapat diakses. Mohon maaf atas ketidaknyamanannya.",
			Excerpt:     "Maintenance server SIAKAD akan dilakukan pada Sabtu, 8 Februari 2026.",
			Priority:    domain.AnnouncementPriorityHigh,
			Category:    "Maintenance",
			PublishedAt: ts("2026-02-01T08:00:00Z"),
			IsPinned:    true,
		},
		{
			ID:          ID("announcement", "2"),
			Title:       "Update Password Policy SSO",
			Content:     "Mulai 15 Februari 2026, password SSO akan menerapkan kebijakan baru: minimal 8 karakter, mengandung huruf besar, huruf kecil, dan angka. Pengguna akan diminta untuk mengubah password saat login pertama kali setelah kebijakan berlaku.",
			Excerpt:     "Kebijakan password baru akan diterapkan mulai 15 Februari 2026.",
			Priority:    domain.AnnouncementPriorityNormal,
			Category:    "Keamanan",
			PublishedAt: ts("2026-01-28T10:00:00Z"),
		},
		{
			ID:          ID("announcement", "3"),
			Title:       "Peluncuran Fitur Helpdesk Baru",
			Content:     "Kami dengan bangga mengumumkan peluncuran portal Helpdesk baru dengan fitur tracking tiket real-time, notifikasi WhatsApp, dan antarmuka yang lebih user-friendly. Akses sekarang melalui pusdatin.umc.ac.id/helpdesk",
			Excerpt:     "Portal Helpdesk baru sudah diluncurkan dengan berbagai fitur baru.",
			Priority:    domain.AnnouncementPriorityNormal,
			Category:    "Layanan Baru",
			PublishedAt: ts("2026-01-25T09:00:00Z"),
		},
		{
			ID:          ID("announcement", "4"),
			Title:       "Jadwal Operasional Pusdatin Semester Genap",
			Content:     "Pusdatin akan beroperasi dengan jadwal berikut selama semester genap 2025/2026:\n\nSenin - Jumat: 08:00 - 16:00 WIB\nSabtu: 08:00 - 12:00 WIB\nMinggu & Libur Nasional: Tutup\n\nUntuk bantuan di luar jam operasional, silakan kirim email ke pusdatin@umc.ac.id",
			Excerpt:     "Informasi jadwal operasional Pusdatin semester genap 2025/2026.",
			Priority:    domain.AnnouncementPriorityLow,
			Category:    "Informasi",
			PublishedAt: ts("2026-01-15T08:00:00Z"),
		},
	}
}

// FAQs returns the help center entries.
func FAQs() []domain.FAQ {
	faq := func(order int, category, question, answer string) domain.FAQ {
		return domain.FAQ{
			ID:       ID("faq", question),
			Question: question,
			Answer:   answer,
			Category: category,
			Order:    order,
			IsActive: true,
		}
	}
	return []domain.FAQ{
		faq(1, "Helpdesk", "Bagaimana cara membuat tiket helpdesk?",
			"Anda dapat membuat tiket melalui menu Helpdesk > Buat Tiket Baru. Isi formulir dengan lengkap meliputi kategori masalah, subjek, deskripsi detail, dan data diri Anda. Setelah tiket dibuat, Anda akan menerima nomor tiket untuk tracking."),
		faq(2, "Helpdesk", "Berapa lama waktu penanganan tiket?",
			"Waktu penanganan tiket tergantung pada prioritas:\n\n• Urgent: 4 jam\n• Tinggi: 8 jam\n• Sedang: 24 jam\n• Rendah: 72 jam\n\nWaktu dihitung sejak tiket dibuat, termasuk malam dan akhir pekan."),
		faq(3, "Helpdesk", "Bagaimana cara cek status tiket?",
			"Buka menu Helpdesk > Cek Status Tiket. Masukkan nomor tiket dan email yang digunakan saat membuat tiket. Anda akan melihat status terkini dan riwayat penanganan tiket."),
		faq(4, "SSO & Akun", "Bagaimana cara reset password SSO?",
			"Untuk reset password SSO:\n\n1. Buka halaman login SSO\n2. Klik 'Lupa Password'\n3. Masukkan email institusi Anda\n4. Cek email untuk link reset password\n5. Buat password baru sesuai kebijakan\n\nJika tidak menerima email, hubungi Pusdatin melalui helpdesk."),
		faq(5, "Jaringan", "Bagaimana cara mengakses WiFi kampus?",
			"Untuk mengakses WiFi kampus:\n\n1. Hubungkan ke SSID 'UMC-WiFi'\n2. Buka browser dan Anda akan diarahkan ke halaman login\n3. Masukkan username dan password SSO Anda\n4. Klik Login\n\nKoneksi akan bertahan selama 24 jam sebelum perlu login ulang."),
		faq(6, "Aset TI", "Bagaimana cara meminjam aset TI?",
			"Untuk meminjam aset TI:\n\n1. Buka halaman Aset TI dan lihat katalog\n2. Pilih aset yang ingin dipinjam\n3. Isi formulir peminjaman\n4. Tunggu persetujuan admin (maks. 24 jam kerja)\n5. Ambil aset di kantor Pusdatin\n6. Kembalikan sesuai jadwal yang disepakati"),
		faq(7, "SIAKAD", "Apa yang harus dilakukan jika tidak bisa akses SIAKAD?",
			"Jika tidak bisa akses SIAKAD:\n\n1. Pastikan internet stabil\n2. Coba clear cache browser\n3. Gunakan browser lain\n4. Cek halaman Status Sistem untuk melihat apakah ada maintenance\n5. Jika masih tidak bisa, buat tiket helpdesk dengan kategori 'SIAKAD'"),
		faq(8, "Umum", "Bagaimana cara menghubungi Pusdatin?",
			"Anda dapat menghubungi Pusdatin melalui:\n\n• Helpdesk Portal: pusdatin.umc.ac.id/helpdesk\n• Email: pusdatin@umc.ac.id\n• Telepon: (0231) 234567\n• WhatsApp: 08123456789\n• Kunjungan langsung: Gedung Rektorat Lt. 2\n\nJam operasional: Senin-Jumat 08:00-16:00, Sabtu 08:00-12:00 WIB"),
	}
}
