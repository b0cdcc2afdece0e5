package form

import (
	"strings"
	"unicode"
)

// Field keys accepted on a case submission. Unknown keys in a request are
// ignored; keys listed in Required must carry a non-blank value.
const (
	FieldPatientName   = "patientName"
	FieldBirthDate     = "birthDate"
	FieldPatientGender = "patientGender"
	FieldDoctorName    = "doctorName"
	FieldDoctorLicense = "doctorLicense"
	FieldDoctorPhone   = "doctorPhone"
	FieldDoctorEmail   = "doctorEmail"
	FieldClinicName    = "clinicName"
	FieldClinicAddress = "clinicAddress"
	FieldImplantType   = "implantType"
	FieldImplantSite   = "implantSite"
	FieldSurgeryDate   = "surgeryDate"
	FieldNotes         = "notes"
	FieldFileLink      = "fileLink"
)

// Required lists the keys a submission must provide, in the order missing
// ones are reported back to the caller.
var Required = []string{
	FieldPatientName,
	FieldBirthDate,
	FieldDoctorName,
	FieldDoctorLicense,
	FieldDoctorPhone,
	FieldDoctorEmail,
	FieldClinicName,
	FieldImplantType,
	FieldImplantSite,
	FieldSurgeryDate,
}

// Known is the full recognized key set, required and optional alike.
var Known = []string{
	FieldPatientName,
	FieldBirthDate,
	FieldPatientGender,
	FieldDoctorName,
	FieldDoctorLicense,
	FieldDoctorPhone,
	FieldDoctorEmail,
	FieldClinicName,
	FieldClinicAddress,
	FieldImplantType,
	FieldImplantSite,
	FieldSurgeryDate,
	FieldNotes,
	FieldFileLink,
}

// Label turns a camelCase field key into its display label: a space is
// inserted before each internal upper-case letter and the first rune is
// capitalized ("doctorLicense" -> "Doctor License").
func Label(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
