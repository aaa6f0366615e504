package crud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/internal/domain"
	"github.com/supply-manager/supply-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type noteDraft struct {
	Text string `json:"text"`
}

// fakeResource puerto CRUD en memoria con contadores por operación y fallos
// inyectables.
type fakeResource struct {
	items []note

	getErr    error
	createErr error
	updateErr error
	deleteErr error
	listErr   error

	lists   int
	gets    int
	creates int
	updates int
	deletes int
}

func (f *fakeResource) List(ctx context.Context) ([]note, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeResource) Get(ctx context.Context, id int64) (*note, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, it := range f.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeResource) Create(ctx context.Context, draft noteDraft) (*note, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := note{ID: int64(len(f.items) + 1), Text: draft.Text}
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeResource) Update(ctx context.Context, id int64, draft noteDraft) (*note, error) {
	f.updates++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items[i].Text = draft.Text
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeResource) Delete(ctx context.Context, id int64) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// recNotifier registra las notificaciones emitidas.
type recNotifier struct {
	successes []string
	errors    []string
}

func (n *recNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// stubConfirmer responde siempre lo mismo y cuenta cuántas veces se le preguntó.
type stubConfirmer struct {
	answer bool
	asked  int
}

func (c *stubConfirmer) Confirm(string) bool {
	c.asked++
	return c.answer
}

// failingReloadable colección relacionada que siempre falla al recargar.
type failingReloadable struct{ calls int }

func (r *failingReloadable) Reload(ctx context.Context) error {
	r.calls++
	return errors.New("relacionada caída")
}

// buildController controlador de notas con todo lo necesario cableado.
func buildController(t *testing.T, res *fakeResource, related ...crud.Reloadable) (*crud.Controller[note, noteDraft], *recNotifier, *stubConfirmer) {
	t.Helper()
	notify := &recNotifier{}
	confirm := &stubConfirmer{answer: true}

	ctrl := crud.New(crud.Config[note, noteDraft]{
		Singular:   "nota",
		Plural:     "notas",
		CreatedMsg: "Nota creada con éxito",
		UpdatedMsg: "Nota actualizada con éxito",
		DeletedMsg: "Nota eliminada con éxito",
		ConfirmMsg: "¿Seguro que desea eliminar esta nota?",
		Resource:   res,
		Related:    related,
		Form: crud.NewForm(
			crud.Field{Key: "text", Label: "Texto"},
		),
		Rules: []crud.Rule{
			{Field: "text", Label: "El texto", Required: true},
		},
		Fill: func(f *crud.Form, n note) {
			f.Set("text", n.Text)
		},
		Draft: func(f *crud.Form, _ bool) noteDraft {
			return noteDraft{Text: f.Value("text")}
		},
		Guard: func(n note) error {
			if n.Text == "protegida" {
				return domain.NewGuardError("No se puede eliminar la nota protegida")
			}
			return nil
		},
		SearchText: func(n note) string { return n.Text },
	}, notify, confirm, logger.Nop())

	return ctrl, notify, confirm
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga
// ──────────────────────────────────────────────────────────────────────────────

func TestController_LoadPueblaLaCacheYLasRelacionadas(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "uno"}, {ID: 2, Text: "dos"}}}
	rel := &failingReloadable{}
	ctrl, notify, _ := buildController(t, res, rel)

	require.NoError(t, ctrl.Load(context.Background()))

	assert.Equal(t, 2, ctrl.Primary().Len())
	assert.Equal(t, 1, rel.calls, "las relacionadas se cargan junto con la primaria")
	assert.Empty(t, notify.errors,
		"el fallo de una relacionada solo se traza, no se notifica al usuario")
}

func TestController_LoadFalloDePrimariaSeNotifica(t *testing.T) {
	res := &fakeResource{listErr: errors.New("api caída")}
	ctrl, notify, _ := buildController(t, res)

	err := ctrl.Load(context.Background())
	require.Error(t, err)
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "Error al cargar notas")
	assert.Contains(t, notify.errors[0], "api caída")
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario — crear y editar
// ──────────────────────────────────────────────────────────────────────────────

func TestController_OpenCreateAbreFormularioVacio(t *testing.T) {
	res := &fakeResource{}
	ctrl, _, _ := buildController(t, res)

	ctrl.Form().Set("text", "residuo de otra edición")
	ctrl.OpenCreate()

	assert.True(t, ctrl.FormOpen())
	assert.True(t, ctrl.Creating())
	assert.Zero(t, ctrl.EditTarget())
	assert.Empty(t, ctrl.Form().Value("text"), "el formulario debe abrirse limpio")
}

// Caso: editar siempre obtiene la entidad fresca del servidor, nunca la copia
// cacheada (otra sesión pudo haberla modificado).
func TestController_OpenEditObtieneDelServidor(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 5, Text: "fresca"}}}
	ctrl, _, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.OpenEdit(context.Background(), 5))

	assert.Equal(t, 1, res.gets, "editar debe pedir la entidad por id al servidor")
	assert.True(t, ctrl.FormOpen())
	assert.False(t, ctrl.Creating())
	assert.Equal(t, int64(5), ctrl.EditTarget())
	assert.Equal(t, "fresca", ctrl.Form().Value("text"))
}

func TestController_OpenEditFalloNoAbreElFormulario(t *testing.T) {
	res := &fakeResource{getErr: errors.New("504")}
	ctrl, notify, _ := buildController(t, res)

	err := ctrl.OpenEdit(context.Background(), 5)
	require.Error(t, err)
	assert.False(t, ctrl.FormOpen())
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "Error al cargar nota")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestController_SubmitSinFormularioAbierto(t *testing.T) {
	res := &fakeResource{}
	ctrl, _, _ := buildController(t, res)

	err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, crud.ErrFormClosed)
}

// Caso: la validación corre antes que cualquier llamada de red; un formulario
// inválido nunca genera tráfico y queda abierto para corregir.
func TestController_SubmitInvalidoNoTocaLaRed(t *testing.T) {
	res := &fakeResource{}
	ctrl, notify, _ := buildController(t, res)
	ctrl.OpenCreate()

	err := ctrl.Submit(context.Background())
	require.Error(t, err)

	assert.Zero(t, res.creates, "validación fallida no debe llamar al servidor")
	assert.True(t, ctrl.FormOpen(), "el formulario queda abierto para reintentar")
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "El texto es obligatorio", notify.errors[0])
}

func TestController_SubmitCreaYNotificaCreacion(t *testing.T) {
	res := &fakeResource{}
	ctrl, notify, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.OpenCreate()
	ctrl.Form().Set("text", "nueva")
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, 1, res.creates)
	assert.Zero(t, res.updates)
	assert.False(t, ctrl.FormOpen(), "el éxito cierra el formulario")
	assert.Equal(t, 1, ctrl.Primary().Len(), "la caché se recarga tras crear")
	require.Len(t, notify.successes, 1)
	assert.Equal(t, "Nota creada con éxito", notify.successes[0])
}

func TestController_SubmitActualizaYNotificaActualizacion(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "vieja"}}}
	ctrl, notify, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.OpenEdit(context.Background(), 1))

	ctrl.Form().Set("text", "editada")
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, 1, res.updates)
	assert.Zero(t, res.creates, "editar nunca debe crear un duplicado")
	require.Len(t, notify.successes, 1)
	assert.Equal(t, "Nota actualizada con éxito", notify.successes[0])

	got, ok := ctrl.Primary().FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "editada", got.Text)
}

// Caso: un rechazo remoto deja el formulario abierto con los valores intactos;
// el usuario corrige y reintenta sin reteclear.
func TestController_SubmitFalloRemotoConservaElFormulario(t *testing.T) {
	res := &fakeResource{createErr: errors.New("el nombre ya existe")}
	ctrl, notify, _ := buildController(t, res)

	ctrl.OpenCreate()
	ctrl.Form().Set("text", "duplicada")
	err := ctrl.Submit(context.Background())
	require.Error(t, err)

	assert.True(t, ctrl.FormOpen())
	assert.Equal(t, "duplicada", ctrl.Form().Value("text"), "los valores tecleados se conservan")
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "Error al guardar nota")
	assert.Contains(t, notify.errors[0], "el nombre ya existe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación — guard, confirmación y recarga
// ──────────────────────────────────────────────────────────────────────────────

// Caso: el guard corre antes que la confirmación; una entidad bloqueada no
// llega al prompt ni genera llamada de red, sin importar la respuesta.
func TestController_DeleteBloqueadoPorGuardSinRedNiConfirmacion(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "protegida"}}}
	ctrl, notify, confirm := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.RequestDelete(context.Background(), 1)
	require.Error(t, err)

	var gerr *domain.GuardError
	require.ErrorAs(t, err, &gerr)
	assert.Zero(t, confirm.asked, "el guard debe correr antes de la confirmación")
	assert.Zero(t, res.deletes, "una entidad bloqueada nunca genera llamada de red")
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "No se puede eliminar la nota protegida", notify.errors[0])
	assert.Equal(t, 1, ctrl.Primary().Len(), "la caché queda intacta")
}

func TestController_DeleteCanceladoPorElUsuario(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "normal"}}}
	ctrl, notify, confirm := buildController(t, res)
	confirm.answer = false
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.RequestDelete(context.Background(), 1))

	assert.Equal(t, 1, confirm.asked)
	assert.Zero(t, res.deletes, "rechazar la confirmación no debe eliminar nada")
	assert.Empty(t, notify.successes)
	assert.Empty(t, notify.errors)
}

func TestController_DeleteConfirmadoRecargaYNotifica(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "normal"}, {ID: 2, Text: "otra"}}}
	ctrl, notify, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.RequestDelete(context.Background(), 1))

	assert.Equal(t, 1, res.deletes)
	assert.Equal(t, 1, ctrl.Primary().Len(), "la caché se recarga tras eliminar")
	require.Len(t, notify.successes, 1)
	assert.Equal(t, "Nota eliminada con éxito", notify.successes[0])
}

// Caso: un fallo remoto al eliminar deja la caché sin cambios (nunca se muta
// de forma optimista).
func TestController_DeleteFalloRemotoNoMutaLaCache(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "normal"}}, deleteErr: errors.New("409")}
	ctrl, notify, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.RequestDelete(context.Background(), 1)
	require.Error(t, err)

	assert.Equal(t, 1, ctrl.Primary().Len())
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "Error al eliminar nota")
}

func TestController_DeleteIdInexistente(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "normal"}}}
	ctrl, notify, confirm := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.RequestDelete(context.Background(), 99)
	require.Error(t, err)
	assert.Zero(t, confirm.asked)
	assert.Zero(t, res.deletes)
	require.Len(t, notify.errors, 1)
	assert.Contains(t, notify.errors[0], "No se encontró nota con id 99")
}

func TestController_CanDeleteReflejaElGuard(t *testing.T) {
	res := &fakeResource{}
	ctrl, _, _ := buildController(t, res)

	assert.False(t, ctrl.CanDelete(note{ID: 1, Text: "protegida"}))
	assert.True(t, ctrl.CanDelete(note{ID: 2, Text: "normal"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestController_SearchFiltraSinDistinguirMayusculas(t *testing.T) {
	res := &fakeResource{items: []note{
		{ID: 1, Text: "Teclado inalámbrico"},
		{ID: 2, Text: "Monitor"},
		{ID: 3, Text: "teclado mecánico"},
	}}
	ctrl, _, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Search("TECLADO")
	visible := ctrl.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID, "el filtro conserva el orden del servidor")
	assert.Equal(t, int64(3), visible[1].ID)
}

// Caso: término vacío (o solo espacios) restaura la vista completa.
func TestController_SearchVaciaRestauraLaVistaCompleta(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "uno"}, {ID: 2, Text: "dos"}}}
	ctrl, _, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Search("uno")
	require.Len(t, ctrl.Visible(), 1)

	ctrl.Search("   ")
	assert.Len(t, ctrl.Visible(), 2)
	assert.Empty(t, ctrl.SearchTerm())
}

func TestController_SearchSinCoincidencias(t *testing.T) {
	res := &fakeResource{items: []note{{ID: 1, Text: "uno"}}}
	ctrl, _, _ := buildController(t, res)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Search("zzz")
	assert.Empty(t, ctrl.Visible())
}
