package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/gympro-api/internal/application/auth"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/gympro-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/gympro-api/pkg/jwt"
)

// testServer arma la aplicación completa (router incluido) sobre repos fake,
// con el mismo cableado que cmd/api/main.go.
type testServer struct {
	app          *fiber.App
	users        *fakeUserRepo
	addresses    *fakeAddressRepo
	exercises    *fakeExerciseRepo
	descriptions *fakeDescriptionRepo
	rooms        *fakeTrainingRoomRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := newFakeUserRepo()
	addresses := newFakeAddressRepo()
	exercises := newFakeExerciseRepo()
	descriptions := newFakeDescriptionRepo()
	rooms := newFakeTrainingRoomRepo()

	tr := apphttp.NewErrorTranslator("test", nil)
	app := fiber.New(fiber.Config{ErrorHandler: tr.FiberErrorHandler})

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		AddressUC:      usecase.NewAddressUseCase(addresses),
		DescriptionUC:  usecase.NewDescriptionUseCase(descriptions),
		ExerciseUC:     usecase.NewExerciseUseCase(exercises),
		TrainingRoomUC: usecase.NewTrainingRoomUseCase(rooms, addresses, users, exercises, descriptions),
		UserUC:         usecase.NewUserUseCase(users, addresses),
		Users:          users,
		JWTSecret:      testJWTSecret,
		Translator:     tr,
	})

	return &testServer{
		app:          app,
		users:        users,
		addresses:    addresses,
		exercises:    exercises,
		descriptions: descriptions,
		rooms:        rooms,
	}
}

// seedRole inserta un usuario con el rol dado y devuelve su header Authorization.
func (s *testServer) seedRole(t *testing.T, role string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	id := "user-" + role
	now := time.Now()
	require.NoError(t, s.users.Create(context.Background(), &entity.User{
		ID:           id,
		Email:        role + "@gympro.test",
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
	tok, err := pkgjwt.Generate(testJWTSecret, id, role+"@gympro.test", role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con body JSON opcional y decodifica la respuesta.
func (s *testServer) doJSON(t *testing.T, method, path, authHeader string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	resp.Body.Close()
	return resp, decoded
}

// doJSONList es doJSON para respuestas que son arrays JSON.
func (s *testServer) doJSONList(t *testing.T, method, path, authHeader string) (*http.Response, []map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	resp.Body.Close()
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth: registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaCustomerSinToken(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "nuevo@gympro.test",
		"password": "secret123",
		"role":     "superAdmin", // debe ignorarse
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "la respuesta debe envolver al usuario en user")
	assert.Equal(t, "nuevo@gympro.test", user["email"])
	assert.Equal(t, entity.RoleCustomer, user["role"],
		"el registro siempre crea customer aunque la petición pida otro rol")
	assert.NotContains(t, body, "token", "el registro no emite token")
	assert.NotContains(t, user, "password")
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	s := newTestServer(t)

	payload := map[string]string{"email": "dup@gympro.test", "password": "secret123"}
	resp, _ := s.doJSON(t, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already exists", body["message"])
}

func TestRegister_SinCredenciales_Retorna400(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "solo-email@gympro.test",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required", body["message"])
}

func TestLogin_DevuelveTokenValido(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "login@gympro.test", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "login@gympro.test", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	claims, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "login@gympro.test", claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleCustomer, user["role"])
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "login@gympro.test", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "login@gympro.test", "password": "equivocado",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body["message"])
}

// Email inexistente responde igual que password incorrecto.
func TestLogin_EmailDesconocido_Retorna401(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nadie@gympro.test", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Exercises: CRUD y validación
// ──────────────────────────────────────────────────────────────────────────────

func validExercise() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Sentadilla",
		"description": "Sentadilla con barra",
		"duration":    10.0,
		"repetitions": 12.0,
		"series":      4.0,
		"rest":        90.0,
		"difficulty":  "medium",
	}
}

func TestExercise_CreateYGet(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	in := validExercise()
	in["difficulty"] = "MEDIUM" // debe normalizarse a minúsculas

	resp, body := s.doJSON(t, http.MethodPost, "/exercise", owner, in)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "medium", body["difficulty"])

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	resp, body = s.doJSON(t, http.MethodGet, "/exercise/"+id, owner, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sentadilla", body["name"])
}

func TestExercise_ValidacionDeCampos(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	cases := []struct {
		name    string
		drop    string
		wantMsg string
	}{
		{"sin name", "name", "Name is required"},
		{"sin description", "description", "Description is required"},
		{"sin duration", "duration", "Duration must be a number"},
		{"sin repetitions", "repetitions", "Repetitions must be a number"},
		{"sin series", "series", "Series must be a number"},
		{"sin rest", "rest", "Rest must be a number"},
		{"sin difficulty", "difficulty", "Difficulty is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validExercise()
			delete(in, tc.drop)
			resp, body := s.doJSON(t, http.MethodPost, "/exercise", owner, in)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.wantMsg, body["message"])
		})
	}

	// Ninguna petición rechazada debe haber persistido nada.
	resp, list := s.doJSONList(t, http.MethodGet, "/exercise", owner)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list, "un payload inválido no debe crear el ejercicio")
}

func TestExercise_DificultadInvalida_Retorna400(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	in := validExercise()
	in["difficulty"] = "imposible"
	resp, _ := s.doJSON(t, http.MethodPost, "/exercise", owner, in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExercise_Inexistente_Retorna404(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	resp, body := s.doJSON(t, http.MethodGet, "/exercise/no-existe", owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Exercise not found", body["message"])

	resp, body = s.doJSON(t, http.MethodPut, "/exercise/no-existe", owner, validExercise())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Exercise not found", body["message"])
}

func TestExercise_DeleteLuegoGet_Retorna404(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	resp, body := s.doJSON(t, http.MethodPost, "/exercise", owner, validExercise())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)

	resp, _ = s.doJSON(t, http.MethodDelete, "/exercise/"+id, owner, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodGet, "/exercise/"+id, owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodDelete, "/exercise/"+id, owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "borrar dos veces debe dar 404")
}

func TestExercise_CustomerBloqueado_Retorna403(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)

	resp, _ := s.doJSON(t, http.MethodPost, "/exercise", customer, validExercise())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodGet, "/exercise", customer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Addresses
// ──────────────────────────────────────────────────────────────────────────────

func validAddress() map[string]interface{} {
	return map[string]interface{}{
		"street":  "Calle 10 #5-23",
		"city":    "Medellín",
		"zipCode": "050021",
		"country": "Colombia",
	}
}

func TestAddress_CreateComoCustomer(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)

	resp, body := s.doJSON(t, http.MethodPost, "/address", customer, validAddress())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Medellín", body["city"])
	assert.NotEmpty(t, body["id"])
}

func TestAddress_CreateIncompleto_Retorna400(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)

	in := validAddress()
	delete(in, "city")
	resp, body := s.doJSON(t, http.MethodPost, "/address", customer, in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Address data is required", body["message"])
}

func TestAddress_UpdateCampoVacio_Retorna400(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)
	owner := s.seedRole(t, entity.RoleOwner)

	resp, body := s.doJSON(t, http.MethodPost, "/address", customer, validAddress())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)

	in := validAddress()
	in["street"] = ""
	resp, body = s.doJSON(t, http.MethodPut, "/address/"+id, owner, in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "street is required and must be a string", body["message"])

	// El update rechazado no debe haber tocado el documento.
	resp, body = s.doJSON(t, http.MethodGet, "/address/"+id, owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Calle 10 #5-23", body["street"])
}

func TestAddress_RolesPorRuta(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)
	owner := s.seedRole(t, entity.RoleOwner)

	// owner no puede crear direcciones
	resp, _ := s.doJSON(t, http.MethodPost, "/address", owner, validAddress())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// customer sí, y todos los roles pueden listar
	resp, body := s.doJSON(t, http.MethodPost, "/address", customer, validAddress())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)

	resp, list := s.doJSONList(t, http.MethodGet, "/address", owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)

	// customer no puede borrar
	resp, _ = s.doJSON(t, http.MethodDelete, "/address/"+id, customer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// owner sí
	resp, _ = s.doJSON(t, http.MethodDelete, "/address/"+id, owner, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Descriptions
// ──────────────────────────────────────────────────────────────────────────────

func validDescription() map[string]interface{} {
	return map[string]interface{}{
		"installations": []string{"piscina", "sauna"},
		"equipments":    []string{"mancuernas", "barras"},
		"activities":    []string{"spinning", "crossfit"},
	}
}

func TestDescription_CreateSoloOwner(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)
	admin := s.seedRole(t, entity.RoleSuperAdmin)

	resp, body := s.doJSON(t, http.MethodPost, "/description", owner, validDescription())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["id"])

	// superAdmin no está en la lista de roles del POST
	resp, _ = s.doJSON(t, http.MethodPost, "/description", admin, validDescription())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDescription_ListSoloSuperAdmin(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)
	admin := s.seedRole(t, entity.RoleSuperAdmin)

	resp, _ := s.doJSON(t, http.MethodPost, "/description", owner, validDescription())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodGet, "/description", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, list := s.doJSONList(t, http.MethodGet, "/description", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)
}

func TestDescription_ListasRequeridas(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	cases := []struct {
		drop    string
		wantMsg string
	}{
		{"installations", "Installations are required"},
		{"equipments", "Equipments are required"},
		{"activities", "Activities are required"},
	}
	for _, tc := range cases {
		in := validDescription()
		delete(in, tc.drop)
		resp, body := s.doJSON(t, http.MethodPost, "/description", owner, in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, tc.wantMsg, body["message"])
	}

	// Ninguna petición rechazada debe haber persistido nada.
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	resp, list := s.doJSONList(t, http.MethodGet, "/description", admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list, "un payload inválido no debe crear la descripción")
}

// ──────────────────────────────────────────────────────────────────────────────
// Training rooms
// ──────────────────────────────────────────────────────────────────────────────

func TestTrainingRoom_CreateSoloSuperAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	owner := s.seedRole(t, entity.RoleOwner)

	in := map[string]interface{}{"name": "Sala A", "capacity": 30.0}
	resp, body := s.doJSON(t, http.MethodPost, "/training-room", admin, in)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(30), body["capacity"])

	resp, _ = s.doJSON(t, http.MethodPost, "/training-room", owner, in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTrainingRoom_ValidacionCapacity(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)

	resp, body := s.doJSON(t, http.MethodPost, "/training-room", admin, map[string]interface{}{
		"name": "Sala A",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Capacity is required", body["message"])

	resp, body = s.doJSON(t, http.MethodPost, "/training-room", admin, map[string]interface{}{
		"capacity": 30.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", body["message"])

	resp, _ = s.doJSON(t, http.MethodPost, "/training-room", admin, map[string]interface{}{
		"name": "Sala A", "capacity": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTrainingRoom_ListExpandeReferencias(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	owner := s.seedRole(t, entity.RoleOwner)
	customer := s.seedRole(t, entity.RoleCustomer)

	// Dirección y ejercicio reales para expandir
	resp, addr := s.doJSON(t, http.MethodPost, "/address", customer, validAddress())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, ex := s.doJSON(t, http.MethodPost, "/exercise", owner, validExercise())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodPost, "/training-room", admin, map[string]interface{}{
		"name":        "Sala A",
		"capacity":    30.0,
		"address":     addr["id"],
		"responsible": "user-" + entity.RoleOwner,
		"exercises":   []string{ex["id"].(string), "ref-rota"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, list := s.doJSONList(t, http.MethodGet, "/training-room", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)

	room := list[0]
	address, _ := room["address"].(map[string]interface{})
	require.NotNil(t, address, "address debe venir expandida como objeto")
	assert.Equal(t, "Medellín", address["city"])

	responsible, _ := room["responsible"].(map[string]interface{})
	require.NotNil(t, responsible, "responsible debe venir expandido")
	assert.Equal(t, entity.RoleOwner+"@gympro.test", responsible["email"])
	assert.NotContains(t, responsible, "role", "responsible solo proyecta identidad y contacto")

	exercises, _ := room["exercises"].([]interface{})
	assert.Len(t, exercises, 1, "la referencia rota se omite sin fallar el listado")
}

func TestTrainingRoom_Inexistente_Retorna404(t *testing.T) {
	s := newTestServer(t)
	owner := s.seedRole(t, entity.RoleOwner)

	resp, body := s.doJSON(t, http.MethodGet, "/training-room/no-existe", owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Training room not found", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_ListSoloSuperAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	customer := s.seedRole(t, entity.RoleCustomer)

	resp, _ := s.doJSON(t, http.MethodGet, "/user", customer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, list := s.doJSONList(t, http.MethodGet, "/user", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 2)
	for _, u := range list {
		assert.NotContains(t, u, "password")
		assert.NotContains(t, u, "passwordHash")
	}
}

func TestUser_GetYUpdateSoloCustomer(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	customer := s.seedRole(t, entity.RoleCustomer)
	customerID := "user-" + entity.RoleCustomer

	// superAdmin no está en la lista del GET por ID
	resp, _ := s.doJSON(t, http.MethodGet, "/user/"+customerID, admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.doJSON(t, http.MethodGet, "/user/"+customerID, customer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, customerID, body["id"])

	// Update parcial: solo firstName; el email no se toca
	resp, body = s.doJSON(t, http.MethodPut, "/user/"+customerID, customer, map[string]interface{}{
		"firstName": "Ana",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana", body["firstName"])
	assert.Equal(t, entity.RoleCustomer+"@gympro.test", body["email"])
}

func TestUser_UpdateRolInvalido_Retorna400(t *testing.T) {
	s := newTestServer(t)
	customer := s.seedRole(t, entity.RoleCustomer)
	customerID := "user-" + entity.RoleCustomer

	resp, _ := s.doJSON(t, http.MethodPut, "/user/"+customerID, customer, map[string]interface{}{
		"role": "rey",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUser_DeleteSoloSuperAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := s.seedRole(t, entity.RoleSuperAdmin)
	customer := s.seedRole(t, entity.RoleCustomer)
	customerID := "user-" + entity.RoleCustomer

	resp, _ := s.doJSON(t, http.MethodDelete, "/user/"+customerID, customer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.doJSON(t, http.MethodDelete, "/user/"+customerID, admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := s.doJSON(t, http.MethodDelete, "/user/no-existe", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

// Las rutas protegidas exigen token aunque la ruta exista.
func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/address", "/description", "/exercise", "/training-room", "/user"} {
		resp, _ := s.doJSON(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
