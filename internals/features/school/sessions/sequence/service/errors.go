package service

import "errors"

/* =========================================
   Error taxonomy engine sequence
   Semua error bertipe & bisa dibedakan caller
   (dibungkus fmt.Errorf %w dengan konteks).
========================================= */

var (
	// Transisi status melanggar state machine (mis. conducted → apapun)
	ErrInvalidTransition = errors.New("transisi status sesi tidak diizinkan")

	// Alasan pembatalan di luar enum tertutup
	ErrInvalidCancellationReason = errors.New("alasan pembatalan tidak valid")

	// Urutan 1..150 tidak lengkap / ada duplikat day_number
	ErrDataIntegrity = errors.New("urutan sesi section tidak konsisten")

	// Dua writer balapan pada planned session yang sama; caller wajib reload + retry
	ErrConcurrentModification = errors.New("sesi diubah proses lain, muat ulang lalu coba lagi")
)
