package service

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/billing/feetypes/model"
	studentmodel "sekolahku_backend/internals/features/students/student/model"
)

// ResolveFeeTypesForStudent: kebalikan ResolveTargetStudents — semua jenis
// tagihan aktif di tahun ajaran siswa yang menyasar siswa tersebut.
// Dipakai saat siswa baru dibuat / pindah masuk: setiap jenis tagihan ini
// harus digenerate invoicenya.
func ResolveFeeTypesForStudent(db *gorm.DB, student *studentmodel.StudentModel) ([]model.FeeTypeModel, error) {
	if student.StudentYearID == nil {
		return nil, nil
	}

	var feeTypes []model.FeeTypeModel
	if err := db.
		Where("fee_type_year_id = ? AND fee_type_is_active = ?", *student.StudentYearID, true).
		Find(&feeTypes).Error; err != nil {
		return nil, err
	}

	out := make([]model.FeeTypeModel, 0, len(feeTypes))
	for i := range feeTypes {
		ft := feeTypes[i]
		ok, err := targetsStudent(db, &ft, student)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ft)
		}
	}
	return out, nil
}

func targetsStudent(db *gorm.DB, ft *model.FeeTypeModel, student *studentmodel.StudentModel) (bool, error) {
	switch ft.FeeTypeTarget {
	case model.TargetAll:
		return true, nil

	case model.TargetByClass:
		if student.StudentClassID == nil {
			return false, nil
		}
		var n int64
		err := db.Model(&model.FeeTypeClassModel{}).
			Where("fee_type_class_fee_type_id = ? AND fee_type_class_class_id = ?", ft.FeeTypeID, *student.StudentClassID).
			Count(&n).Error
		return n > 0, err

	case model.TargetByStudent:
		var n int64
		err := db.Model(&model.FeeTypeStudentModel{}).
			Where("fee_type_student_fee_type_id = ? AND fee_type_student_student_id = ?", ft.FeeTypeID, student.StudentID).
			Count(&n).Error
		return n > 0, err
	}
	return false, nil
}
