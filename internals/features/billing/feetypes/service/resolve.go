package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/billing/feetypes/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// EffectiveAmount: kontrak resolusi tarif — override siswa selalu menang
// atas override kelas, override kelas menang atas tarif dasar.
func EffectiveAmount(base int64, classOverride, studentOverride *int64) int64 {
	if studentOverride != nil {
		return *studentOverride
	}
	if classOverride != nil {
		return *classOverride
	}
	return base
}

// ResolveEffectiveAmount memuat override (siswa lalu kelas) dari DB dan
// menerapkan urutan resolusi EffectiveAmount.
func ResolveEffectiveAmount(db *gorm.DB, ft *model.FeeTypeModel, student *studentmodel.StudentModel) (int64, error) {
	var studentOverride *int64
	var link model.FeeTypeStudentModel
	err := db.
		Where("fee_type_student_fee_type_id = ? AND fee_type_student_student_id = ?", ft.FeeTypeID, student.StudentID).
		Take(&link).Error
	switch {
	case err == nil:
		studentOverride = link.FeeTypeStudentAmountIDR
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	var classOverride *int64
	if student.StudentClassID != nil {
		var cl model.FeeTypeClassModel
		err := db.
			Where("fee_type_class_fee_type_id = ? AND fee_type_class_class_id = ?", ft.FeeTypeID, *student.StudentClassID).
			Take(&cl).Error
		switch {
		case err == nil:
			classOverride = cl.FeeTypeClassAmountIDR
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return 0, err
		}
	}

	return EffectiveAmount(ft.FeeTypeAmountIDR, classOverride, studentOverride), nil
}

// ResolveTargetStudents menentukan siswa sasaran sebuah jenis tagihan:
//   - ALL        → semua siswa AKTIF di tahun ajaran jenis tagihan;
//   - BY_CLASS   → siswa AKTIF yang kelasnya ada di link kelas;
//   - BY_STUDENT → tepat siswa yang di-link, apa pun statusnya.
func ResolveTargetStudents(db *gorm.DB, ft *model.FeeTypeModel) ([]studentmodel.StudentModel, error) {
	var students []studentmodel.StudentModel

	switch ft.FeeTypeTarget {
	case model.TargetAll:
		err := db.
			Where("student_year_id = ? AND student_status = ?", ft.FeeTypeYearID, studentmodel.StudentAktif).
			Find(&students).Error
		return students, err

	case model.TargetByClass:
		err := db.
			Where("student_status = ?", studentmodel.StudentAktif).
			Where("student_class_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).
					Model(&model.FeeTypeClassModel{}).
					Select("fee_type_class_class_id").
					Where("fee_type_class_fee_type_id = ?", ft.FeeTypeID),
			).
			Find(&students).Error
		return students, err

	case model.TargetByStudent:
		err := db.
			Where("student_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).
					Model(&model.FeeTypeStudentModel{}).
					Select("fee_type_student_student_id").
					Where("fee_type_student_fee_type_id = ?", ft.FeeTypeID),
			).
			Find(&students).Error
		return students, err
	}

	return nil, fiber.NewError(fiber.StatusBadRequest, "Target jenis tagihan tidak dikenal: "+string(ft.FeeTypeTarget))
}

// ReplaceClassLinks mengganti SELURUH link kelas (delete-then-recreate,
// tidak pernah merge parsial).
func ReplaceClassLinks(tx *gorm.DB, feeTypeID uuid.UUID, classIDs []uuid.UUID) error {
	if err := tx.
		Where("fee_type_class_fee_type_id = ?", feeTypeID).
		Delete(&model.FeeTypeClassModel{}).Error; err != nil {
		return err
	}
	for _, classID := range classIDs {
		link := model.FeeTypeClassModel{
			FeeTypeClassFeeTypeID: feeTypeID,
			FeeTypeClassClassID:   classID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceStudentLinks: idem untuk link siswa.
func ReplaceStudentLinks(tx *gorm.DB, feeTypeID uuid.UUID, studentIDs []uuid.UUID) error {
	if err := tx.
		Where("fee_type_student_fee_type_id = ?", feeTypeID).
		Delete(&model.FeeTypeStudentModel{}).Error; err != nil {
		return err
	}
	for _, studentID := range studentIDs {
		link := model.FeeTypeStudentModel{
			FeeTypeStudentFeeTypeID: feeTypeID,
			FeeTypeStudentStudentID: studentID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
