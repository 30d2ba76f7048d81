package validation

import (
	"strings"
	"testing"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

func validTicket() CreateTicketInput {
	return CreateTicketInput{
		Category:      domain.TicketCategoryNetwork,
		Subject:       "WiFi tidak bisa terhubung",
		Description:   "Sejak pagi WiFi di gedung A lantai 3 tidak dapat terhubung sama sekali.",
		ReporterName:  "Ahmad Fauzi",
		ReporterEmail: "ahmad.fauzi@umc.ac.id",
	}
}

func TestValidateTicketCreationDefaultsPriority(t *testing.T) {
	out, errs := ValidateTicketCreation(validTicket())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Priority != domain.TicketPriorityMedium {
		t.Fatalf("expected medium priority, got %s", out.Priority)
	}
}

func TestValidateTicketCreationBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateTicketInput)
		field   string
		wantErr bool
	}{
		{"subject 9", func(in *CreateTicketInput) { in.Subject = strings.Repeat("a", 9) }, "subject", true},
		{"subject 10", func(in *CreateTicketInput) { in.Subject = strings.Repeat("a", 10) }, "subject", false},
		{"subject 200", func(in *CreateTicketInput) { in.Subject = strings.Repeat("a", 200) }, "subject", false},
		{"subject 201", func(in *CreateTicketInput) { in.Subject = strings.Repeat("a", 201) }, "subject", true},
		{"description 19", func(in *CreateTicketInput) { in.Description = strings.Repeat("b", 19) }, "description", true},
		{"description 20", func(in *CreateTicketInput) { in.Description = strings.Repeat("b", 20) }, "description", false},
		{"description 5000", func(in *CreateTicketInput) { in.Description = strings.Repeat("b", 5000) }, "description", false},
		{"description 5001", func(in *CreateTicketInput) { in.Description = strings.Repeat("b", 5001) }, "description", true},
		{"subject padded to 10 with spaces", func(in *CreateTicketInput) { in.Subject = " " + strings.Repeat("a", 9) }, "subject", true},
		{"description padded to 20 with spaces", func(in *CreateTicketInput) { in.Description = strings.Repeat("b", 19) + "\n" }, "description", true},
		{"multibyte counted as runes", func(in *CreateTicketInput) { in.Subject = strings.Repeat("é", 10) }, "subject", false},
		{"name 2", func(in *CreateTicketInput) { in.ReporterName = "Al" }, "reporterName", true},
		{"bad email", func(in *CreateTicketInput) { in.ReporterEmail = "not-an-email" }, "reporterEmail", true},
		{"unknown category", func(in *CreateTicketInput) { in.Category = "printer" }, "category", true},
		{"unknown priority", func(in *CreateTicketInput) { in.Priority = "critical" }, "priority", true},
		{"phone with separators", func(in *CreateTicketInput) { in.ReporterPhone = "0812-3456-7890" }, "reporterPhone", false},
		{"phone +62", func(in *CreateTicketInput) { in.ReporterPhone = "+62 812 3456 7890" }, "reporterPhone", false},
		{"phone too short", func(in *CreateTicketInput) { in.ReporterPhone = "0812345" }, "reporterPhone", true},
		{"phone letters", func(in *CreateTicketInput) { in.ReporterPhone = "08123abc4567" }, "reporterPhone", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validTicket()
			tc.mutate(&in)
			_, errs := ValidateTicketCreation(in)
			_, got := errs[tc.field]
			if got != tc.wantErr {
				t.Fatalf("field %s error=%v, want %v (errs=%v)", tc.field, got, tc.wantErr, errs)
			}
		})
	}
}

func TestValidateTicketCreationTrimsText(t *testing.T) {
	in := validTicket()
	in.Subject = "  WiFi tidak bisa terhubung\t"
	in.ReporterName = " Ahmad Fauzi "
	out, errs := ValidateTicketCreation(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Subject != "WiFi tidak bisa terhubung" || out.ReporterName != "Ahmad Fauzi" {
		t.Fatalf("text not trimmed: %q %q", out.Subject, out.ReporterName)
	}
}

func TestValidateTicketCreationFirstRuleWins(t *testing.T) {
	in := validTicket()
	in.Subject = ""
	in.Category = ""
	_, errs := ValidateTicketCreation(in)
	if errs["subject"] != "Subjek wajib diisi" {
		t.Fatalf("unexpected subject message %q", errs["subject"])
	}
	if errs["category"] != "Kategori wajib dipilih" {
		t.Fatalf("unexpected category message %q", errs["category"])
	}

	in = validTicket()
	in.Subject = "pendek"
	_, errs = ValidateTicketCreation(in)
	if errs["subject"] != "Subjek minimal 10 karakter" {
		t.Fatalf("unexpected subject message %q", errs["subject"])
	}
	if len(errs) != 1 {
		t.Fatalf("expected only one invalid field, got %v", errs.Fields())
	}
}

func TestFieldErrorsErr(t *testing.T) {
	var none FieldErrors
	if none.Err() != nil {
		t.Fatal("empty errors should produce nil error")
	}
	errs := FieldErrors{"subject": "x"}
	if errs.Err() == nil || len(errs.Details()["subject"]) != 1 {
		t.Fatal("expected validation error with details")
	}
}

func TestValidateStatusCheck(t *testing.T) {
	out, errs := ValidateStatusCheck(StatusCheckInput{TicketNumber: " tkt-20260201-1234 ", Email: "a@umc.ac.id"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.TicketNumber != "TKT-20260201-1234" {
		t.Fatalf("ticket number not normalized: %s", out.TicketNumber)
	}

	_, errs = ValidateStatusCheck(StatusCheckInput{TicketNumber: "TKT-2026-1", Email: ""})
	if !strings.HasPrefix(errs["ticketNumber"], "Format nomor tiket tidak valid") {
		t.Fatalf("unexpected ticketNumber message %q", errs["ticketNumber"])
	}
	if errs["email"] != "Email wajib diisi" {
		t.Fatalf("unexpected email message %q", errs["email"])
	}
}

func validBorrow() BorrowRequestInput {
	return BorrowRequestInput{
		AssetID:            "ast-001",
		BorrowerName:       "Siti Nurhaliza",
		BorrowerEmail:      "siti@umc.ac.id",
		BorrowerPhone:      "081234567890",
		BorrowerUnit:       "Fakultas Teknik",
		Purpose:            "Presentasi seminar proposal",
		BorrowDate:         "2026-02-10",
		ExpectedReturnDate: "2026-02-12",
	}
}

func TestValidateBorrowRequest(t *testing.T) {
	if _, errs := ValidateBorrowRequest(validBorrow()); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	in := validBorrow()
	in.ExpectedReturnDate = "2026-02-09"
	_, errs := ValidateBorrowRequest(in)
	if _, ok := errs["expectedReturnDate"]; !ok {
		t.Fatalf("expected return-before-borrow error, got %v", errs)
	}

	in = validBorrow()
	in.BorrowDate = "10/02/2026"
	in.BorrowerPhone = ""
	in.Purpose = "pinjam"
	_, errs = ValidateBorrowRequest(in)
	for _, field := range []string{"borrowDate", "borrowerPhone", "purpose"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
	if errs["purpose"] != "Tujuan minimal 10 karakter" {
		t.Fatalf("unexpected purpose message %q", errs["purpose"])
	}
}

func TestValidateBorrowStatusRequiresReasonOnReject(t *testing.T) {
	_, errs := ValidateBorrowStatus(BorrowStatusInput{Status: domain.BorrowStatusRejected})
	if _, ok := errs["rejectionReason"]; !ok {
		t.Fatalf("expected rejectionReason error, got %v", errs)
	}
	if _, errs := ValidateBorrowStatus(BorrowStatusInput{Status: domain.BorrowStatusApproved}); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, errs := ValidateBorrowStatus(BorrowStatusInput{Status: "lost"}); errs == nil {
		t.Fatal("expected unknown status to fail")
	}
}

func TestValidateLoginAndContact(t *testing.T) {
	_, errs := ValidateLogin(LoginInput{Username: "ab", Password: "12345"})
	if errs["username"] != "Username minimal 3 karakter" || errs["password"] != "Password minimal 6 karakter" {
		t.Fatalf("unexpected login errors %v", errs)
	}

	_, errs = ValidateContact(ContactInput{
		Name:    "Budi",
		Email:   "budi@umc.ac.id",
		Subject: "Halo",
		Message: "Pesan yang cukup panjang untuk lolos.",
	})
	if len(errs) != 1 || errs["subject"] == "" {
		t.Fatalf("expected only subject error, got %v", errs)
	}
}

func TestValidateComment(t *testing.T) {
	if _, errs := ValidateComment(CommentInput{Message: "   "}); errs["message"] == "" {
		t.Fatal("blank comment should be rejected")
	}
	out, errs := ValidateComment(CommentInput{Message: "  sudah dicoba  "})
	if errs != nil || out.Message != "sudah dicoba" {
		t.Fatalf("unexpected result %q %v", out.Message, errs)
	}
}

func TestValidateFiles(t *testing.T) {
	ok := FileMeta{Name: "a.png", Size: 1024, MimeType: "image/png"}

	if err := ValidateFile(FileMeta{Name: "big.pdf", Size: MaxFileSize + 1, MimeType: "application/pdf"}); err != ErrFileTooLarge {
		t.Fatalf("expected too large, got %v", err)
	}
	if err := ValidateFile(FileMeta{Name: "exact.pdf", Size: MaxFileSize, MimeType: "application/pdf"}); err != nil {
		t.Fatalf("exact cap should pass, got %v", err)
	}
	if err := ValidateFile(FileMeta{Name: "setup.exe", Size: 10, MimeType: "application/x-msdownload"}); err != ErrFileTypeNotAllowed {
		t.Fatalf("expected type not allowed, got %v", err)
	}

	six := []FileMeta{ok, ok, ok, ok, ok, ok}
	errs := ValidateFiles(six)
	if len(errs) != 1 || errs[0] != "Maksimal 5 file yang dapat diunggah" {
		t.Fatalf("expected batch rejection, got %v", errs)
	}

	mixed := []FileMeta{
		ok,
		{Name: "setup.exe", Size: 10, MimeType: "application/x-msdownload"},
		{Name: "video.zip", Size: MaxFileSize + 1, MimeType: "application/zip"},
	}
	errs = ValidateFiles(mixed)
	if len(errs) != 2 {
		t.Fatalf("expected two collected errors, got %v", errs)
	}
	if errs[0] != "File 2 (setup.exe): Tipe file tidak diizinkan" {
		t.Fatalf("unexpected message %q", errs[0])
	}
	if errs[1] != "File 3 (video.zip): Ukuran file maksimal 10MB" {
		t.Fatalf("unexpected message %q", errs[1])
	}

	if errs := ValidateFiles([]FileMeta{ok}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
