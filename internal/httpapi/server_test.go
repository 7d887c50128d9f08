package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"zooarcadia/internal/config"
	"zooarcadia/internal/database"
	"zooarcadia/internal/httpapi/auth"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/stats"
)

const testPassword = "password123"

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	store  *stats.MemoryStore
}

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	// unique in-memory DB per test name to avoid leakage via shared cache
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "unit-test-secret-at-least-32-chars!",
		JWTExpiry:          time.Hour,
		CORSOrigins:        []string{"*"},
		LoginRatePerMinute: 6000,
		LoginRateBurst:     100,
	}

	store := stats.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(Deps{Cfg: cfg, DB: db, Stats: store, Logger: logger})
	return &testEnv{t: t, router: router, db: db, store: store}
}

func (e *testEnv) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(e.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createUser(email, role string) *models.User {
	hashed, err := auth.HashPassword(testPassword)
	require.NoError(e.t, err)

	user := &models.User{Email: email, Password: hashed, Role: role}
	require.NoError(e.t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) login(email string) string {
	w := e.request(http.MethodPost, "/api/login", gin.H{"email": email, "password": testPassword}, "")
	require.Equal(e.t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(e.t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)

	t.Run("Success", func(t *testing.T) {
		w := env.request(http.MethodPost, "/api/login", gin.H{"email": "admin@zoo.fr", "password": testPassword}, "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Connexion réussie", body["message"])
		assert.NotEmpty(t, body["token"])

		user := body["user"].(map[string]any)
		assert.Equal(t, "admin@zoo.fr", user["email"])
		assert.Equal(t, "admin", user["role"])
		assert.NotContains(t, user, "password")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := env.request(http.MethodPost, "/api/login", gin.H{"email": "admin@zoo.fr", "password": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownEmailSameMessage", func(t *testing.T) {
		// unknown email and wrong password must be indistinguishable
		wUnknown := env.request(http.MethodPost, "/api/login", gin.H{"email": "ghost@zoo.fr", "password": testPassword}, "")
		wWrong := env.request(http.MethodPost, "/api/login", gin.H{"email": "admin@zoo.fr", "password": "nope"}, "")

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
		assert.Equal(t, decodeBody(t, wUnknown)["error"], decodeBody(t, wWrong)["error"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := env.request(http.MethodPost, "/api/login", gin.H{"email": "admin@zoo.fr"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Role gating: no token yields 401 on protected routes, a token with a
// role outside the allowed set yields 403.
func TestRoleGating(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	env.createUser("employe@zoo.fr", models.RoleEmploye)
	env.createUser("veto@zoo.fr", models.RoleVeterinaire)

	employeToken := env.login("employe@zoo.fr")
	vetoToken := env.login("veto@zoo.fr")

	cases := []struct {
		name       string
		method     string
		path       string
		wrongToken string
	}{
		{"ListUsers", http.MethodGet, "/api/users", employeToken},
		{"CreateHabitat", http.MethodPost, "/api/habitats", vetoToken},
		{"ListRapports", http.MethodGet, "/api/rapports", employeToken},
		{"CreateRapport", http.MethodPost, "/api/rapports", employeToken},
		{"CreateConsommation", http.MethodPost, "/api/consommations", vetoToken},
		{"DashboardStats", http.MethodGet, "/api/dashboard/stats", employeToken},
		{"ListAllAvis", http.MethodGet, "/api/avis/all", vetoToken},
	}

	for _, tc := range cases {
		t.Run(tc.name+"_NoToken", func(t *testing.T) {
			w := env.request(tc.method, tc.path, gin.H{}, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "authentication", decodeBody(t, w)["kind"])
		})
		t.Run(tc.name+"_WrongRole", func(t *testing.T) {
			w := env.request(tc.method, tc.path, gin.H{}, tc.wrongToken)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "authorization", decodeBody(t, w)["kind"])
		})
	}

	t.Run("InvalidTokenIs403", func(t *testing.T) {
		w := env.request(http.MethodGet, "/api/users", nil, "not-a-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AnyStaffMayModerateAvis", func(t *testing.T) {
		avis := &models.Avis{Pseudo: "Momo", Texte: "super", Statut: models.AvisEnAttente}
		require.NoError(t, env.db.Create(avis).Error)
		w := env.request(http.MethodPut, fmt.Sprintf("/api/avis/%d", avis.ID), gin.H{"statut": "approuve"}, vetoToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// Password hashing: the plaintext is never stored, login works only
// with the original password.
func TestUserPasswordHashing(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	adminToken := env.login("admin@zoo.fr")

	w := env.request(http.MethodPost, "/api/users", gin.H{
		"email":    "nouveau@zoo.fr",
		"password": "p",
		"role":     "employe",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.User
	require.NoError(t, env.db.Where("email = ?", "nouveau@zoo.fr").First(&stored).Error)
	assert.NotEqual(t, "p", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("p")))

	// the hash never leaks through the JSON layer
	assert.NotContains(t, w.Body.String(), stored.Password)

	wLogin := env.request(http.MethodPost, "/api/login", gin.H{"email": "nouveau@zoo.fr", "password": "p"}, "")
	assert.Equal(t, http.StatusOK, wLogin.Code)

	wBad := env.request(http.MethodPost, "/api/login", gin.H{"email": "nouveau@zoo.fr", "password": "q"}, "")
	assert.Equal(t, http.StatusUnauthorized, wBad.Code)
}

// Self-delete guard: an admin cannot delete their own account but can
// delete any other user.
func TestUserSelfDeleteGuard(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser("admin@zoo.fr", models.RoleAdmin)
	other := env.createUser("other@zoo.fr", models.RoleEmploye)
	adminToken := env.login("admin@zoo.fr")

	wSelf := env.request(http.MethodDelete, fmt.Sprintf("/api/users/%d", admin.ID), nil, adminToken)
	assert.Equal(t, http.StatusConflict, wSelf.Code)
	assert.Equal(t, "conflict", decodeBody(t, wSelf)["kind"])

	wOther := env.request(http.MethodDelete, fmt.Sprintf("/api/users/%d", other.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, wOther.Code)

	var count int64
	env.db.Model(&models.User{}).Where("id = ?", other.ID).Count(&count)
	assert.Zero(t, count)
}

// Habitat deletion guard plus the full browse scenario: a habitat with
// animals cannot be deleted until its animals are gone.
func TestHabitatLifecycleScenario(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	adminToken := env.login("admin@zoo.fr")

	// create habitat "Savane"
	w := env.request(http.MethodPost, "/api/habitats", gin.H{
		"nom":                "Savane",
		"description":        "Grande plaine africaine",
		"superficie":         "2000m2",
		"temperature":        "25-35C",
		"visiteurs_par_jour": 300,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	habitatID := uint(decodeBody(t, w)["habitat"].(map[string]any)["id"].(float64))

	// create animal "Simba" in it
	w = env.request(http.MethodPost, "/api/animaux", gin.H{
		"prenom":     "Simba",
		"race":       "Lion",
		"habitat_id": habitatID,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	animalID := uint(decodeBody(t, w)["animal"].(map[string]any)["id"].(float64))

	// public listing embeds the animal
	w = env.request(http.MethodGet, "/api/habitats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var habitats []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habitats))
	require.Len(t, habitats, 1)
	animaux := habitats[0]["animaux"].([]any)
	require.Len(t, animaux, 1)
	assert.Equal(t, "Simba", animaux[0].(map[string]any)["prenom"])

	// deletion is blocked while Simba lives there
	w = env.request(http.MethodDelete, fmt.Sprintf("/api/habitats/%d", habitatID), nil, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decodeBody(t, w)["kind"])

	// delete Simba, then the habitat goes away
	w = env.request(http.MethodDelete, fmt.Sprintf("/api/animaux/%d", animalID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodDelete, fmt.Sprintf("/api/habitats/%d", habitatID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodGet, fmt.Sprintf("/api/habitats/%d", habitatID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// View counter: N view calls end with a count of N, first call included.
func TestAnimalViewCounter(t *testing.T) {
	env := setupTestEnv(t)
	habitat := &models.Habitat{Nom: "Jungle", Description: "d", Superficie: "s", Temperature: "t", VisiteursParJour: 1}
	require.NoError(t, env.db.Create(habitat).Error)
	animal := &models.Animal{Prenom: "Kaa", Race: "Python", HabitatID: habitat.ID}
	require.NoError(t, env.db.Create(animal).Error)

	const n = 3
	for i := 0; i < n; i++ {
		w := env.request(http.MethodPost, fmt.Sprintf("/api/animaux/%d/view", animal.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Kaa", decodeBody(t, w)["animal"])
	}

	top, err := env.store.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, animal.ID, top[0].AnimalID)
	assert.Equal(t, int64(n), top[0].Views)
	assert.Equal(t, "Kaa", top[0].AnimalName)

	w := env.request(http.MethodPost, "/api/animaux/999/view", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Review lifecycle: created pending, invisible publicly until approved,
// re-settable afterwards.
func TestAvisLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	employe := env.createUser("employe@zoo.fr", models.RoleEmploye)
	employeToken := env.login("employe@zoo.fr")

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		w := env.request(http.MethodPost, "/api/avis", gin.H{"pseudo": "Momo"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation", decodeBody(t, w)["kind"])
	})

	w := env.request(http.MethodPost, "/api/avis", gin.H{"pseudo": "Momo", "texte": "Superbe visite"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Avis
	require.NoError(t, env.db.First(&created).Error)
	assert.Equal(t, models.AvisEnAttente, created.Statut)

	// pending review is not public
	w = env.request(http.MethodGet, "/api/avis", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// approve it
	w = env.request(http.MethodPut, fmt.Sprintf("/api/avis/%d", created.ID), gin.H{"statut": "approuve"}, employeToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodGet, "/api/avis", nil, "")
	var public []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, "Momo", public[0]["pseudo"])

	// moderator recorded
	require.NoError(t, env.db.First(&created).Error)
	require.NotNil(t, created.EmployeID)
	assert.Equal(t, employe.ID, *created.EmployeID)

	// statuses are freely re-settable: reject it again
	w = env.request(http.MethodPut, fmt.Sprintf("/api/avis/%d", created.ID), gin.H{"statut": "rejete"}, employeToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodGet, "/api/avis", nil, "")
	assert.Equal(t, "[]", w.Body.String())

	t.Run("InvalidStatutRejected", func(t *testing.T) {
		w := env.request(http.MethodPut, fmt.Sprintf("/api/avis/%d", created.ID), gin.H{"statut": "publie"}, employeToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownAvisIs404", func(t *testing.T) {
		w := env.request(http.MethodPut, "/api/avis/999", gin.H{"statut": "approuve"}, employeToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Animal detail embeds its habitat and only the latest vet report.
func TestAnimalDetailEmbedsLatestRapport(t *testing.T) {
	env := setupTestEnv(t)
	veto := env.createUser("veto@zoo.fr", models.RoleVeterinaire)

	habitat := &models.Habitat{Nom: "Savane", Description: "d", Superficie: "s", Temperature: "t", VisiteursParJour: 1}
	require.NoError(t, env.db.Create(habitat).Error)
	animal := &models.Animal{Prenom: "Simba", Race: "Lion", HabitatID: habitat.ID}
	require.NoError(t, env.db.Create(animal).Error)

	older := &models.RapportVeterinaire{
		AnimalID: animal.ID, VeterinaireID: veto.ID,
		EtatAnimal: "fatigué", NourritureProposee: "viande", GrammageNourriture: 500,
		DatePassage: time.Now().Add(-48 * time.Hour), DetailEtat: "repos conseillé",
	}
	latest := &models.RapportVeterinaire{
		AnimalID: animal.ID, VeterinaireID: veto.ID,
		EtatAnimal: "en forme", NourritureProposee: "viande", GrammageNourriture: 600,
		DatePassage: time.Now(), DetailEtat: "RAS",
	}
	require.NoError(t, env.db.Create(older).Error)
	require.NoError(t, env.db.Create(latest).Error)

	w := env.request(http.MethodGet, fmt.Sprintf("/api/animaux/%d", animal.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Savane", body["habitat"].(map[string]any)["nom"])

	rapports := body["rapports"].([]any)
	require.Len(t, rapports, 1)
	assert.Equal(t, "en forme", rapports[0].(map[string]any)["etat_animal"])

	t.Run("UnknownAnimalIs404", func(t *testing.T) {
		w := env.request(http.MethodGet, "/api/animaux/999", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	adminToken := env.login("admin@zoo.fr")

	t.Run("EmptyPlaceholder", func(t *testing.T) {
		w := env.request(http.MethodGet, "/api/dashboard/stats", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Aucune consultation", body["most_popular"])
		assert.Equal(t, float64(0), body["total_consultations"])
	})

	habitat := &models.Habitat{Nom: "Savane", Description: "d", Superficie: "s", Temperature: "t", VisiteursParJour: 1}
	require.NoError(t, env.db.Create(habitat).Error)
	simba := &models.Animal{Prenom: "Simba", Race: "Lion", HabitatID: habitat.ID}
	nala := &models.Animal{Prenom: "Nala", Race: "Lion", HabitatID: habitat.ID}
	require.NoError(t, env.db.Create(simba).Error)
	require.NoError(t, env.db.Create(nala).Error)

	for i := 0; i < 5; i++ {
		env.request(http.MethodPost, fmt.Sprintf("/api/animaux/%d/view", simba.ID), nil, "")
	}
	for i := 0; i < 2; i++ {
		env.request(http.MethodPost, fmt.Sprintf("/api/animaux/%d/view", nala.ID), nil, "")
	}

	w := env.request(http.MethodGet, "/api/dashboard/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Simba", body["most_popular"])
	assert.Equal(t, float64(7), body["total_consultations"])
	assert.Equal(t, float64(2), body["stats_count"])

	ranked := body["animals_stats"].([]any)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Simba", ranked[0].(map[string]any)["animal_name"])
}

func TestCommentairesHabitat(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	env.createUser("veto@zoo.fr", models.RoleVeterinaire)
	env.createUser("employe@zoo.fr", models.RoleEmploye)
	adminToken := env.login("admin@zoo.fr")
	vetoToken := env.login("veto@zoo.fr")
	employeToken := env.login("employe@zoo.fr")

	habitat := &models.Habitat{Nom: "Marais", Description: "d", Superficie: "s", Temperature: "t", VisiteursParJour: 1}
	require.NoError(t, env.db.Create(habitat).Error)

	// only a vet may comment
	w := env.request(http.MethodPost, fmt.Sprintf("/api/habitats/%d/commentaires", habitat.ID),
		gin.H{"commentaire": "Eau à changer"}, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(http.MethodPost, fmt.Sprintf("/api/habitats/%d/commentaires", habitat.ID),
		gin.H{"commentaire": "Eau à changer"}, vetoToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// default habitat status applies when omitted
	commentaire := decodeBody(t, w)["commentaire"].(map[string]any)
	assert.Equal(t, "bon", commentaire["statut_habitat"])

	// unknown habitat
	w = env.request(http.MethodPost, "/api/habitats/999/commentaires", gin.H{"commentaire": "x"}, vetoToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// admin and vet may read, employee may not
	w = env.request(http.MethodGet, fmt.Sprintf("/api/habitats/%d/commentaires", habitat.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(http.MethodGet, fmt.Sprintf("/api/habitats/%d/commentaires", habitat.ID), nil, employeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConsommationsAndRapports(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser("employe@zoo.fr", models.RoleEmploye)
	env.createUser("veto@zoo.fr", models.RoleVeterinaire)
	env.createUser("admin@zoo.fr", models.RoleAdmin)
	employeToken := env.login("employe@zoo.fr")
	vetoToken := env.login("veto@zoo.fr")
	adminToken := env.login("admin@zoo.fr")

	habitat := &models.Habitat{Nom: "Savane", Description: "d", Superficie: "s", Temperature: "t", VisiteursParJour: 1}
	require.NoError(t, env.db.Create(habitat).Error)
	animal := &models.Animal{Prenom: "Simba", Race: "Lion", HabitatID: habitat.ID}
	require.NoError(t, env.db.Create(animal).Error)

	w := env.request(http.MethodPost, "/api/consommations", gin.H{
		"animal_id":          animal.ID,
		"date_consommation":  time.Now().Format(time.RFC3339),
		"heure_consommation": "12:30",
		"nourriture_donnee":  "viande",
		"quantite":           800,
	}, employeToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// any authenticated staff member may list feedings
	w = env.request(http.MethodGet, "/api/consommations", nil, vetoToken)
	require.Equal(t, http.StatusOK, w.Code)
	var consommations []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &consommations))
	require.Len(t, consommations, 1)
	assert.Equal(t, "Simba", consommations[0]["animal"].(map[string]any)["prenom"])

	w = env.request(http.MethodPost, "/api/rapports", gin.H{
		"animal_id":           animal.ID,
		"etat_animal":         "en forme",
		"nourriture_proposee": "viande",
		"grammage_nourriture": 600,
		"date_passage":        time.Now().Format(time.RFC3339),
		"detail_etat":         "RAS",
	}, vetoToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// report about an unknown animal is rejected
	w = env.request(http.MethodPost, "/api/rapports", gin.H{
		"animal_id":           999,
		"etat_animal":         "x",
		"nourriture_proposee": "x",
		"grammage_nourriture": 1,
		"date_passage":        time.Now().Format(time.RFC3339),
		"detail_etat":         "x",
	}, vetoToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(http.MethodGet, "/api/rapports", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var rapports []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rapports))
	require.Len(t, rapports, 1)
	assert.Equal(t, "veto@zoo.fr", rapports[0]["veterinaire"].(map[string]any)["email"])
}

func TestContact(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(http.MethodPost, "/api/contact", gin.H{
		"titre":       "Horaires",
		"description": "Êtes-vous ouverts le lundi ?",
		"email":       "visiteur@example.com",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["reference"])

	w = env.request(http.MethodPost, "/api/contact", gin.H{"titre": "Horaires"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
