package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/StefanoMT20/daw2/internal/model"
	"github.com/StefanoMT20/daw2/internal/repository"
)

// ── Repositorios en memoria para pruebas unitarias ──────────
//
// Todos los mocks comparten un mockStore; el TxRunner del agregado toma
// una instantánea del estado antes de ejecutar la función transaccional
// y lo restaura si falla, reproduciendo el rollback de la base real.
// ─────────────────────────────────────────────────────────────

type mockStore struct {
	usuarios     map[int]*model.Usuario
	carreras     map[int]*model.Carrera
	docentes     map[int]*model.Docente
	cursos       map[int]*model.Curso
	proyecciones map[int]*model.Proyeccion
	items        map[int]*model.ProyeccionCurso

	nextUsuarioID    int
	nextCursoID      int
	nextProyeccionID int
	nextItemID       int
}

func newMockStore() *mockStore {
	return &mockStore{
		usuarios:         make(map[int]*model.Usuario),
		carreras:         make(map[int]*model.Carrera),
		docentes:         make(map[int]*model.Docente),
		cursos:           make(map[int]*model.Curso),
		proyecciones:     make(map[int]*model.Proyeccion),
		items:            make(map[int]*model.ProyeccionCurso),
		nextUsuarioID:    1,
		nextCursoID:      1,
		nextProyeccionID: 1,
		nextItemID:       1,
	}
}

func (s *mockStore) snapshot() *mockStore {
	copia := newMockStore()
	copia.nextUsuarioID = s.nextUsuarioID
	copia.nextCursoID = s.nextCursoID
	copia.nextProyeccionID = s.nextProyeccionID
	copia.nextItemID = s.nextItemID
	for id, u := range s.usuarios {
		v := *u
		copia.usuarios[id] = &v
	}
	for id, c := range s.carreras {
		v := *c
		copia.carreras[id] = &v
	}
	for id, d := range s.docentes {
		v := *d
		copia.docentes[id] = &v
	}
	for id, c := range s.cursos {
		v := *c
		copia.cursos[id] = &v
	}
	for id, p := range s.proyecciones {
		v := *p
		v.ProyeccionCursos = nil
		copia.proyecciones[id] = &v
	}
	for id, it := range s.items {
		v := *it
		v.Curso = nil
		copia.items[id] = &v
	}
	return copia
}

func (s *mockStore) restore(snap *mockStore) {
	*s = *snap
}

// agregarUsuario inserta un usuario de prueba y devuelve su id
func (s *mockStore) agregarUsuario(u model.Usuario) int {
	if u.ID == 0 {
		u.ID = s.nextUsuarioID
	}
	if u.ID >= s.nextUsuarioID {
		s.nextUsuarioID = u.ID + 1
	}
	s.usuarios[u.ID] = &u
	return u.ID
}

// agregarCurso inserta un curso de prueba y devuelve su id
func (s *mockStore) agregarCurso(c model.Curso) int {
	if c.ID == 0 {
		c.ID = s.nextCursoID
	}
	if c.ID >= s.nextCursoID {
		s.nextCursoID = c.ID + 1
	}
	s.cursos[c.ID] = &c
	return c.ID
}

// ── UsuarioRepository ──

type mockUsuarioRepo struct{ s *mockStore }

func (r *mockUsuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	for _, u := range r.s.usuarios {
		if u.Email == usuario.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	usuario.ID = r.s.nextUsuarioID
	r.s.nextUsuarioID++
	usuario.FechaCreacion = time.Now()
	v := *usuario
	r.s.usuarios[usuario.ID] = &v
	return nil
}

func (r *mockUsuarioRepo) GetByID(ctx context.Context, id int) (*model.Usuario, error) {
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v := *u
	return &v, nil
}

func (r *mockUsuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.s.usuarios {
		if u.Email == email {
			v := *u
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── CarreraRepository ──

type mockCarreraRepo struct{ s *mockStore }

func (r *mockCarreraRepo) List(ctx context.Context) ([]model.Carrera, error) {
	out := make([]model.Carrera, 0, len(r.s.carreras))
	for _, c := range r.s.carreras {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *mockCarreraRepo) GetByID(ctx context.Context, id int) (*model.Carrera, error) {
	c, ok := r.s.carreras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v := *c
	return &v, nil
}

// ── DocenteRepository ──

type mockDocenteRepo struct{ s *mockStore }

func (r *mockDocenteRepo) List(ctx context.Context) ([]model.Docente, error) {
	out := make([]model.Docente, 0, len(r.s.docentes))
	for _, d := range r.s.docentes {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockDocenteRepo) GetByID(ctx context.Context, id int) (*model.Docente, error) {
	d, ok := r.s.docentes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v := *d
	return &v, nil
}

// ── CursoRepository ──

type mockCursoRepo struct{ s *mockStore }

func (r *mockCursoRepo) List(ctx context.Context) ([]model.Curso, error) {
	out := make([]model.Curso, 0, len(r.s.cursos))
	for _, c := range r.s.cursos {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CodigoCurso < out[j].CodigoCurso })
	return out, nil
}

func (r *mockCursoRepo) ListByCarreraAndCiclo(ctx context.Context, carreraID int, ciclo string) ([]model.Curso, error) {
	var out []model.Curso
	for _, c := range r.s.cursos {
		if c.CarreraID != nil && *c.CarreraID == carreraID && c.Ciclo == ciclo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CodigoCurso < out[j].CodigoCurso })
	return out, nil
}

func (r *mockCursoRepo) GetByID(ctx context.Context, id int) (*model.Curso, error) {
	c, ok := r.s.cursos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v := *c
	return &v, nil
}

func (r *mockCursoRepo) GetByCodigo(ctx context.Context, codigo string) (*model.Curso, error) {
	for _, c := range r.s.cursos {
		if c.CodigoCurso == codigo {
			v := *c
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCursoRepo) Create(ctx context.Context, curso *model.Curso) error {
	for _, c := range r.s.cursos {
		if c.CodigoCurso == curso.CodigoCurso {
			return gorm.ErrDuplicatedKey
		}
	}
	curso.ID = r.s.nextCursoID
	r.s.nextCursoID++
	v := *curso
	r.s.cursos[curso.ID] = &v
	return nil
}

func (r *mockCursoRepo) Update(ctx context.Context, curso *model.Curso) error {
	for _, c := range r.s.cursos {
		if c.CodigoCurso == curso.CodigoCurso && c.ID != curso.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	v := *curso
	r.s.cursos[curso.ID] = &v
	return nil
}

func (r *mockCursoRepo) Delete(ctx context.Context, id int) error {
	delete(r.s.cursos, id)
	return nil
}

// ── ProyeccionRepository ──

type mockProyeccionRepo struct{ s *mockStore }

// cargar arma el agregado igual que el preload real: cursos de la
// proyección en orden de inserción, cada uno con su Curso resuelto
func (r *mockProyeccionRepo) cargar(p *model.Proyeccion) *model.Proyeccion {
	v := *p
	var items []model.ProyeccionCurso
	for _, it := range r.s.items {
		if it.ProyeccionID == v.ID {
			item := *it
			if curso, ok := r.s.cursos[item.CursoID]; ok {
				c := *curso
				item.Curso = &c
			}
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if items == nil {
		items = []model.ProyeccionCurso{}
	}
	v.ProyeccionCursos = items
	return &v
}

func (r *mockProyeccionRepo) GetByUsuario(ctx context.Context, usuarioID int) (*model.Proyeccion, error) {
	for _, p := range r.s.proyecciones {
		if p.UsuarioID == usuarioID {
			return r.cargar(p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockProyeccionRepo) GetByID(ctx context.Context, id int) (*model.Proyeccion, error) {
	p, ok := r.s.proyecciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.cargar(p), nil
}

func (r *mockProyeccionRepo) Create(ctx context.Context, proyeccion *model.Proyeccion) error {
	for _, p := range r.s.proyecciones {
		if p.UsuarioID == proyeccion.UsuarioID {
			return gorm.ErrDuplicatedKey
		}
	}
	proyeccion.ID = r.s.nextProyeccionID
	r.s.nextProyeccionID++
	proyeccion.FechaCreacion = time.Now()
	proyeccion.FechaActualizacion = proyeccion.FechaCreacion
	v := *proyeccion
	v.ProyeccionCursos = nil
	r.s.proyecciones[proyeccion.ID] = &v
	return nil
}

func (r *mockProyeccionRepo) Delete(ctx context.Context, proyeccion *model.Proyeccion) error {
	delete(r.s.proyecciones, proyeccion.ID)
	return nil
}

func (r *mockProyeccionRepo) DeleteCursos(ctx context.Context, proyeccionID int) error {
	for id, it := range r.s.items {
		if it.ProyeccionID == proyeccionID {
			delete(r.s.items, id)
		}
	}
	return nil
}

func (r *mockProyeccionRepo) AddCurso(ctx context.Context, pc *model.ProyeccionCurso) error {
	pc.ID = r.s.nextItemID
	r.s.nextItemID++
	pc.FechaAgregado = time.Now()
	v := *pc
	v.Curso = nil
	r.s.items[pc.ID] = &v
	return nil
}

func (r *mockProyeccionRepo) DemandaPorCiclo(ctx context.Context, ciclo string) ([]repository.DemandaCurso, error) {
	conteo := make(map[int]int64)
	for _, it := range r.s.items {
		p, ok := r.s.proyecciones[it.ProyeccionID]
		if !ok || p.CicloProyectado != ciclo {
			continue
		}
		conteo[it.CursoID]++
	}

	var filas []repository.DemandaCurso
	for cursoID, cantidad := range conteo {
		curso := r.s.cursos[cursoID]
		filas = append(filas, repository.DemandaCurso{
			CodigoCurso: curso.CodigoCurso,
			Nombre:      curso.Nombre,
			Creditos:    curso.Creditos,
			Cantidad:    cantidad,
		})
	}
	sort.Slice(filas, func(i, j int) bool {
		if filas[i].Cantidad != filas[j].Cantidad {
			return filas[i].Cantidad > filas[j].Cantidad
		}
		return filas[i].CodigoCurso < filas[j].CodigoCurso
	})
	return filas, nil
}

// newTestRepository arma el agregado con los mocks y un TxRunner que
// restaura el estado si la función transaccional falla
func newTestRepository(store *mockStore) *repository.Repository {
	repo := &repository.Repository{
		Usuario:    &mockUsuarioRepo{s: store},
		Carrera:    &mockCarreraRepo{s: store},
		Docente:    &mockDocenteRepo{s: store},
		Curso:      &mockCursoRepo{s: store},
		Proyeccion: &mockProyeccionRepo{s: store},
	}
	repo.TxRunner = func(ctx context.Context, fn func(*repository.Repository) error) error {
		snap := store.snapshot()
		if err := fn(repo); err != nil {
			store.restore(snap)
			return err
		}
		return nil
	}
	return repo
}
