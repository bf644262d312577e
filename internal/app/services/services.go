package services

// Services defined in this package:
// - LookupService: colleges and programs for select fields
// - TransferService: transfer request form submission
// - DirectorService: director account form and table
// - StudentService: student table with confirmed delete
// - ApprovalService: dean approval table with confirmed delete
