package validation

import "fmt"

var fieldLabels = map[string]string{
	"category":           "Kategori",
	"subject":            "Subjek",
	"description":        "Deskripsi",
	"priority":           "Prioritas",
	"reporterName":       "Nama",
	"reporterEmail":      "Email",
	"reporterPhone":      "Nomor telepon",
	"reporterUnit":       "Unit",
	"ticketNumber":       "Nomor tiket",
	"email":              "Email",
	"assetId":            "Aset",
	"borrowerName":       "Nama peminjam",
	"borrowerEmail":      "Email",
	"borrowerPhone":      "Nomor telepon",
	"borrowerUnit":       "Unit/Fakultas",
	"borrowerNIM":        "NIM",
	"purpose":            "Tujuan peminjaman",
	"borrowDate":         "Tanggal peminjaman",
	"expectedReturnDate": "Tanggal pengembalian",
	"username":           "Username",
	"password":           "Password",
	"name":               "Nama",
	"message":            "Pesan",
	"status":             "Status",
	"note":               "Catatan",
	"assigneeId":         "Teknisi",
	"assigneeName":       "Nama teknisi",
	"assigneeEmail":      "Email teknisi",
	"rejectionReason":    "Alasan penolakan",
}

// Messages that differ from the generic templates.
var overrides = map[string]string{
	"category.required":         "Kategori wajib dipilih",
	"category.ticketcategory":   "Kategori wajib dipilih",
	"assetId.required":          "Aset wajib dipilih",
	"borrowerName.min":          "Nama minimal %s karakter",
	"purpose.min":               "Tujuan minimal %s karakter",
	"purpose.max":               "Tujuan maksimal %s karakter",
	"ticketNumber.ticketnumber": "Format nomor tiket tidak valid (contoh: TKT-20240203-1234)",
	"status.required":           "Status wajib dipilih",
}

func message(field, tag, param string) string {
	if tpl, ok := overrides[field+"."+tag]; ok {
		if param != "" {
			return fmt.Sprintf(tpl, param)
		}
		return tpl
	}
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	switch tag {
	case "required", "required_if":
		return label + " wajib diisi"
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", label, param)
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", label, param)
	case "email":
		return "Format email tidak valid"
	case "idphone":
		return "Format nomor telepon tidak valid"
	case "isodate":
		return label + " harus berformat YYYY-MM-DD"
	case "ticketpriority", "ticketstatus", "borrowstatus":
		return label + " tidak dikenal"
	}
	return label + " tidak valid"
}
