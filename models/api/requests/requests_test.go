package requestsapimodels

import (
	"encoding/json"
	"testing"

	"broilink-backend/models"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]RequestCreate{
		`{"type":"Reset Password","detail":"lupa password","name":"Andi","phone":"0812"}`: {
			Name: "Andi", Phone: "0812", RequestType: "Reset Password", Detail: "lupa password",
		},
		`{"request_type":"Lainnya","request_content":"ganti kandang","user":{"name":"Rina"},"whatsapp":"0813"}`: {
			Name: "Rina", Phone: "0813", RequestType: "Lainnya", Detail: "ganti kandang",
		},
		`{"type":" ","request_type":"Lainnya","detail":"a","phone_number":"0814"}`: {
			Phone: "0814", RequestType: "Lainnya", Detail: "a",
		},
	}
	for body, expected := range cases {
		raw := RawRequestPayload{}
		require.NoError(t, json.Unmarshal([]byte(body), &raw))
		require.Equal(t, expected, Normalize(raw), body)
	}
}

func TestValidateGuest(t *testing.T) {
	valid := RequestCreate{Name: "Andi", Phone: "081234567890", RequestType: "Lainnya", Detail: "x"}
	require.NoError(t, valid.ValidateGuest())

	noName := valid
	noName.Name = ""
	require.Error(t, noName.ValidateGuest())

	badPhone := valid
	badPhone.Phone = "abc"
	require.Error(t, badPhone.ValidateGuest())

	noDetail := valid
	noDetail.Detail = ""
	require.Error(t, noDetail.ValidateGuest())
}

func TestFarmRequestAliases(t *testing.T) {
	data := FarmRequestData{}
	require.NoError(t, json.Unmarshal([]byte(`{"farmName":"Kandang D","farmArea":"150"}`), &data))
	data = data.Normalize()
	require.NoError(t, data.Validate())
	require.Equal(t, "Kandang D", data.FarmName)
	require.Equal(t, 150.0, data.FarmArea.Float())

	create := data.ToCreate()
	require.Equal(t, models.RequestTypeAddFarm, create.RequestType)
	require.Equal(t, "Nama Kandang: Kandang D; Luas: 150 m2", create.Detail)
	payload, err := json.Marshal(create.Payload)
	require.NoError(t, err)
	require.NotContains(t, string(payload), "farmName")

	empty := FarmRequestData{}
	require.NoError(t, json.Unmarshal([]byte(`{"farmName":"Kandang E","farmArea":"abc"}`), &empty))
	require.Error(t, empty.Normalize().Validate())
}

func TestStatusUpdateValidate(t *testing.T) {
	require.NoError(t, StatusUpdateData{Status: "Selesai"}.Validate())
	require.NoError(t, StatusUpdateData{Status: " diproses "}.Validate())
	require.Error(t, StatusUpdateData{Status: "batal"}.Validate())
}
