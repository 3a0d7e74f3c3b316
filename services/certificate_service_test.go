package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/polyglotlc/backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Subject{},
		&models.Teacher{},
		&models.Course{},
		&models.Certificate{},
		&models.TeacherApplication{},
		&models.SiteSettings{},
	))
	return db
}

func issueCertificate(t *testing.T, db *gorm.DB, number string) {
	t.Helper()
	cert := models.Certificate{
		StudentName:       "Test Student",
		CertificateNumber: number,
		IssueDate:         time.Now(),
	}
	require.NoError(t, db.Create(&cert).Error)
}

func TestNextCertificateNumber(t *testing.T) {
	t.Run("first number of a year", func(t *testing.T) {
		db := newTestDB(t)

		number, err := NextCertificateNumber(db, 2026)
		require.NoError(t, err)
		assert.Equal(t, "PLC-2026-0001", number)
	})

	t.Run("increments past the highest existing number", func(t *testing.T) {
		db := newTestDB(t)
		issueCertificate(t, db, "PLC-2026-0003")
		issueCertificate(t, db, "PLC-2026-0007")

		number, err := NextCertificateNumber(db, 2026)
		require.NoError(t, err)
		assert.Equal(t, "PLC-2026-0008", number)
	})

	t.Run("each year has its own sequence", func(t *testing.T) {
		db := newTestDB(t)
		issueCertificate(t, db, "PLC-2025-0042")

		number, err := NextCertificateNumber(db, 2026)
		require.NoError(t, err)
		assert.Equal(t, "PLC-2026-0001", number)
	})

	t.Run("unparseable suffix restarts the sequence", func(t *testing.T) {
		db := newTestDB(t)
		issueCertificate(t, db, "PLC-2026-LEGACY")

		number, err := NextCertificateNumber(db, 2026)
		require.NoError(t, err)
		assert.Equal(t, "PLC-2026-0001", number)
	})

	t.Run("exhausted sequence fails closed", func(t *testing.T) {
		db := newTestDB(t)
		issueCertificate(t, db, "PLC-2026-9999")

		_, err := NextCertificateNumber(db, 2026)
		assert.ErrorIs(t, err, ErrCertificateSequenceExhausted)
	})

	t.Run("duplicate insert surfaces as a constraint conflict", func(t *testing.T) {
		db := newTestDB(t)

		number, err := NextCertificateNumber(db, 2026)
		require.NoError(t, err)
		issueCertificate(t, db, number)

		// A racing allocator that read the same state gets the same number
		// and loses on insert.
		dup := models.Certificate{
			StudentName:       "Other Student",
			CertificateNumber: number,
			IssueDate:         time.Now(),
		}
		err = db.Create(&dup).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestParseCertificateSequence(t *testing.T) {
	assert.Equal(t, 7, parseCertificateSequence("PLC-2026-0007"))
	assert.Equal(t, 9999, parseCertificateSequence("PLC-2026-9999"))
	assert.Equal(t, 0, parseCertificateSequence("PLC-2026-"))
	assert.Equal(t, 0, parseCertificateSequence("no dashes"))
	assert.Equal(t, 0, parseCertificateSequence("PLC-2026-XYZ"))
}
