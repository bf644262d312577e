package services

import "github.com/yigit/transferdesk/internal/pkg/form"

// Form names
const (
	TransferFormName = "transfer"
	DirectorFormName = "director"
)

// Transfer form field names
const (
	FieldFullName               = "fullName"
	FieldRegistrationNumber     = "registrationNumber"
	FieldExamRollNumber         = "examRollNumber"
	FieldSourceCollegeName      = "sourceCollegeName"
	FieldDestinationCollegeName = "destinationCollegeName"
	FieldEmail                  = "email"
	FieldContactNumber          = "contactNumber"
	FieldProgramEnrolled        = "programEnrolled"
	FieldCurrentSemester        = "currentSemester"
	FieldApplicationLetter      = "applicationLetter"
	FieldRemarks                = "remarks"
)

// Director form field names
const (
	FieldName     = "name"
	FieldCollege  = "college"
	FieldAddress  = "address"
	FieldPassword = "password"
)

// PDFContentType is the only accepted application letter type
const PDFContentType = "application/pdf"

// MinPasswordLength of a director credential
const MinPasswordLength = 6

// TransferForm returns the field definitions of the transfer request form.
// Select fields carry record ids of the named lookup.
func TransferForm() form.Schema {
	return form.Schema{
		Name: TransferFormName,
		Fields: []form.Field{
			{Name: FieldFullName, Label: "Full Name", Type: form.TypeText,
				Rules: []form.Rule{form.Required("Full Name is required")}},
			{Name: FieldRegistrationNumber, Label: "Registration Number", Type: form.TypeText,
				Rules: []form.Rule{form.Required("Registration Number is required")}},
			{Name: FieldExamRollNumber, Label: "Examination Roll Number", Type: form.TypeNumber,
				Rules: []form.Rule{
					form.Required("Exam Roll Number is required"),
					form.Numeric("Exam Roll Number must be a number"),
				}},
			{Name: FieldSourceCollegeName, Label: "Source College Name", Type: form.TypeSelect, Options: "colleges",
				Rules: []form.Rule{form.Required("Source College Name is required")}},
			{Name: FieldDestinationCollegeName, Label: "Destination College Name", Type: form.TypeSelect, Options: "colleges",
				Rules: []form.Rule{
					form.Required("Destination College Name is required"),
					form.NotEqualTo(FieldSourceCollegeName, "Destination College cannot be the same as Source College"),
				}},
			{Name: FieldEmail, Label: "Email", Type: form.TypeEmail,
				Rules: []form.Rule{
					form.Required("Email is required"),
					form.Email("Invalid email address"),
				}},
			{Name: FieldContactNumber, Label: "Contact Number", Type: form.TypeNumber,
				Rules: []form.Rule{
					form.Required("Contact Number is required"),
					form.Numeric("Contact Number must be a number"),
				}},
			{Name: FieldProgramEnrolled, Label: "Program Enrolled", Type: form.TypeSelect, Options: "programs",
				Rules: []form.Rule{form.Required("Program Enrolled is required")}},
			{Name: FieldCurrentSemester, Label: "Current Semester", Type: form.TypeText,
				Rules: []form.Rule{form.Required("Current Semester is required")}},
			{Name: FieldApplicationLetter, Label: "Application Letter", Type: form.TypeFile,
				Rules: []form.Rule{
					form.Required("Application Letter is required"),
					form.FileType(PDFContentType, "Invalid file format. Please upload a PDF file."),
				}},
			{Name: FieldRemarks, Label: "Remarks (Reason for Transfer)", Type: form.TypeTextarea,
				Rules: []form.Rule{form.Required("Remarks is required")}},
		},
	}
}

// DirectorForm returns the field definitions of the add-director form. The
// address falls back to the selected college's address when left empty.
func DirectorForm() form.Schema {
	return form.Schema{
		Name: DirectorFormName,
		Fields: []form.Field{
			{Name: FieldName, Label: "Name", Type: form.TypeText,
				Rules: []form.Rule{form.Required("Name is required")}},
			{Name: FieldEmail, Label: "Email", Type: form.TypeEmail,
				Rules: []form.Rule{
					form.Required("Email is required"),
					form.Email("Invalid email address"),
				}},
			{Name: FieldCollege, Label: "College", Type: form.TypeSelect, Options: "colleges",
				Rules: []form.Rule{form.Required("College is required")}},
			{Name: FieldAddress, Label: "Address", Type: form.TypeText},
			{Name: FieldPassword, Label: "Password", Type: form.TypePassword,
				Rules: []form.Rule{
					form.Required("Password is required"),
					form.MinLength(MinPasswordLength, "Password should be at least 6 characters"),
				}},
		},
	}
}
