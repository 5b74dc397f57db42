package app

import (
	"context"
	"errors"
	"testing"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
)

// 404 na carga inicial leva ao cadastro com zero abas liberadas.
func TestShell_SemEmpresa_VaiParaCadastro(t *testing.T) {
	m := &apiMock{
		BuscarEmpresaFn: func(_ context.Context) (*models.Empresa, error) {
			return nil, client.ErrSemEmpresa
		},
	}
	s := NewShell(m, nil)
	s.Carregar(context.Background())

	if s.Estado() != EstadoCadastro {
		t.Fatalf("estado=%v want=EstadoCadastro", s.Estado())
	}
	if abas := s.AbasDisponiveis(); abas != nil {
		t.Fatalf("abas=%v; nenhuma aba deveria estar liberada", abas)
	}
}

// Falha de transporte na carga inicial também degrada para o cadastro.
func TestShell_FalhaDeRede_VaiParaCadastro(t *testing.T) {
	m := &apiMock{
		BuscarEmpresaFn: func(_ context.Context) (*models.Empresa, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := NewShell(m, nil)
	s.Carregar(context.Background())

	if s.Estado() != EstadoCadastro {
		t.Fatalf("estado=%v want=EstadoCadastro", s.Estado())
	}
}

func TestShell_ComEmpresa_LiberaAbas(t *testing.T) {
	m := &apiMock{
		BuscarEmpresaFn: func(_ context.Context) (*models.Empresa, error) {
			return &models.Empresa{ID: "11222333000181", RazaoSocial: "Padaria"}, nil
		},
	}
	s := NewShell(m, nil)
	s.Carregar(context.Background())

	if s.Estado() != EstadoOperacao {
		t.Fatalf("estado=%v want=EstadoOperacao", s.Estado())
	}
	if abas := s.AbasDisponiveis(); len(abas) != 4 {
		t.Fatalf("abas=%v", abas)
	}
}

// O callback do formulário transiciona o shell SEM novo fetch: a
// empresa devolvida pelo POST é usada diretamente.
func TestShell_EmpresaSalva_TransicionaSemRefetch(t *testing.T) {
	chamadas := 0
	m := &apiMock{
		BuscarEmpresaFn: func(_ context.Context) (*models.Empresa, error) {
			chamadas++
			return nil, client.ErrSemEmpresa
		},
	}
	s := NewShell(m, nil)
	s.Carregar(context.Background())

	e := &models.Empresa{ID: "11222333000181", RazaoSocial: "Padaria"}
	s.EmpresaSalva(e)

	if s.Estado() != EstadoOperacao {
		t.Fatalf("estado=%v want=EstadoOperacao", s.Estado())
	}
	if s.Empresa() != e {
		t.Fatalf("empresa não é a devolvida pelo servidor")
	}
	if chamadas != 1 {
		t.Fatalf("BuscarEmpresa chamado %d vezes; refetch indevido", chamadas)
	}
}
