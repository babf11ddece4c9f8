package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRequest_WireKeys(t *testing.T) {
	req := RegistrationRequest{
		AppVersion:  "1.0",
		DeviceModel: "iPhone",
		DeviceType:  "I",
		FirstName:   "Jane",
		LastName:    "Doe",
		OsVersion:   "17.0",
		Phone:       "9876543210",
		PhoneCode:   "91",
	}

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"app_version":"1.0","device_model":"iPhone","device_token":"","device_type":"I",
		"dob":"","email":"","first_name":"Jane","gender":"","last_name":"Doe",
		"newsletter_subscribed":0,"os_version":"17.0","password":"","phone":"9876543210",
		"phone_code":"91"
	}`, string(out))
	assert.Equal(t, "9876543210", req.Contact())
}

func TestRegistrationResponse_Decode(t *testing.T) {
	body := `{
		"success": true,
		"status": 200,
		"message": "OTP sent",
		"data": {
			"id": 42,
			"first_name": "Jane",
			"is_phone_verified": "0",
			"is_email_verified": 1,
			"push_enabled": "true",
			"is_social_register": 0,
			"newsletter_subscribed": 0
		}
	}`

	var resp RegistrationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.True(t, resp.Succeeded())
	assert.Equal(t, "OTP sent", resp.Message)
	require.NotNil(t, resp.Data)

	id, ok := resp.Data.UserID()
	assert.True(t, ok)
	assert.Equal(t, 42, id)
	assert.Equal(t, "Jane", resp.Data.FirstName)
	assert.Equal(t, NewFlexibleBool(false), resp.Data.IsPhoneVerified)
	assert.Equal(t, NewFlexibleBool(true), resp.Data.IsEmailVerified)
	assert.Equal(t, NewFlexibleBool(true), resp.Data.PushEnabled)
}

func TestRegistrationResponse_SuccessWithOtherStatusIsNotSuccess(t *testing.T) {
	var resp RegistrationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"status":201}`), &resp))
	assert.False(t, resp.Succeeded())
	assert.Nil(t, resp.Data)
}

func TestRegistrationResponse_MissingRequiredKeys(t *testing.T) {
	for _, body := range []string{
		`{"status":200}`,
		`{"success":true}`,
		`{"success":"yes","status":200}`,
		`[]`,
	} {
		var resp RegistrationResponse
		assert.Error(t, json.Unmarshal([]byte(body), &resp), body)
	}
}

func TestUserData_MissingID(t *testing.T) {
	var user UserData
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Jane"}`), &user))

	_, ok := user.UserID()
	assert.False(t, ok)
	assert.False(t, user.PushEnabled.Valid)
}

func TestVerifyOtpResponse_Decode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      VerifyOtpResponse
		succeeded bool
	}{
		{
			name:      "success",
			body:      `{"success":true,"status":200}`,
			want:      VerifyOtpResponse{Success: true, Status: 200},
			succeeded: true,
		},
		{
			name: "failure with message",
			body: `{"success":false,"status":400,"message":"Invalid code"}`,
			want: VerifyOtpResponse{Status: 400, Message: "Invalid code"},
		},
		{
			name: "success but wrong status",
			body: `{"success":true,"status":500}`,
			want: VerifyOtpResponse{Success: true, Status: 500},
		},
		{
			name: "wrong typed keys fall back",
			body: `{"success":"nope","status":"200","message":12}`,
			want: VerifyOtpResponse{},
		},
		{
			name: "empty object",
			body: `{}`,
			want: VerifyOtpResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got VerifyOtpResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.succeeded, got.Succeeded())
		})
	}
}

func TestVerifyOtpResponse_RejectsNonObject(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"ok"`, `null`, `{`} {
		var got VerifyOtpResponse
		assert.Error(t, json.Unmarshal([]byte(body), &got), body)
	}
}

func TestOtpState_Helpers(t *testing.T) {
	state := OtpState{Digits: [OtpLength]string{"1", "2", "3", "4", "5"}}
	assert.True(t, state.Complete())
	assert.Equal(t, "12345", state.Code())

	state.Digits[2] = ""
	assert.False(t, state.Complete())

	assert.Equal(t, "Resend a new code in 00:30 sec", ResendLabel(30))
	assert.Equal(t, "Resend a new code in 00:05 sec", ResendLabel(5))
	assert.Equal(t, "Didn't receive code?", ResendLabel(0))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		FieldLastName:  "Last name cannot be empty.",
		FieldFirstName: "First name cannot be empty.",
	}
	assert.Equal(t, "First name cannot be empty. Last name cannot be empty.", errs.Error())
}
