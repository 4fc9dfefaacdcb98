package models

// Response messages surfaced to API callers.
const (
	MsgCreateLeadSuccess   = "Lead successfully created"
	MsgCreateLeadFail      = "Lead cannot be created"
	MsgCreateLeadDuplicate = "Lead cannot be created, as user already exists"
	MsgGetLeadSuccess      = "Lead successfully retrieved"
	MsgGetLeadFail         = "Lead not found"
	MsgListLeadSuccess     = "Lead list successfully retrieved"
	MsgListLeadFail        = "Lead list cannot be retrieved"
	MsgUpdateLeadSuccess   = "Lead successfully updated"
	MsgUpdateLeadFail      = "Lead cannot be updated"

	MsgGetInterestSuccess    = "Interest successfully retrieved"
	MsgGetInterestFail       = "Interest not found"
	MsgCreateInterestSuccess = "Interest successfully added"
	MsgCreateInterestFail    = "Interest could not be added"
	MsgUpdateInterestSuccess = "Interest successfully updated"
	MsgUpdateInterestFail    = "Interest could not be updated"
	MsgDeleteInterestSuccess = "Interest successfully deleted"
	MsgDeleteInterestFail    = "Interest could not be deleted"

	MsgLeadFormSuccess = "Success, Thank you for contacting us"
	MsgLeadFormFail    = "Something went wrong"

	MsgUnknownError     = "Unknown error"
	MsgInvalidRequest   = "Invalid Request!"
	MsgValidationFailed = "required fields are missing"
	MsgItemNotFound     = "Item does not exist"
)
