package session

import (
	"context"
	"fmt"
	"regexp"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/chile"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// Reglas de formulario del registro. Se validan en el cliente y nunca llegan
// al backend si fallan.
var (
	regexCorreo    = regexp.MustCompile(`@(duoc\.cl|profesor\.duoc\.cl|gmail\.com)$`)
	regexDireccion = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+\s+\d+$`)
	regexRUT       = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}\-[\dkK]$`)
)

// Registrar valida el formulario y crea la cuenta en el backend con rol
// CLIENTE. No inicia sesión: el usuario debe loguearse después.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (*entity.Usuario, error) {
	if err := validarRegistro(in); err != nil {
		return nil, err
	}

	nuevo := &entity.Usuario{
		Nombre:    in.Nombre,
		Apellido:  in.Apellidos,
		RUT:       in.RUT,
		Correo:    in.Correo,
		Password:  in.Contrasena,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Region:    in.Region,
		Comuna:    in.Comuna,
		Rol:       entity.RolCrudo{Nombre: string(entity.RolCliente)},
	}

	creado, err := uc.usuarios.Registrar(ctx, nuevo)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("correo", creado.Correo).Msg("usuario registrado")
	return creado, nil
}

func validarRegistro(in dto.RegistroRequest) error {
	falla := func(msg string) error {
		return fmt.Errorf("%w: %s", domain.ErrValidacion, msg)
	}

	if in.Nombre == "" || in.Apellidos == "" || in.RUT == "" || in.Correo == "" ||
		in.ConfirmarCorreo == "" || in.Contrasena == "" || in.ConfirmarContrasena == "" ||
		in.Direccion == "" {
		return falla("completa todos los campos obligatorios")
	}
	if !regexRUT.MatchString(in.RUT) {
		return falla("RUT inválido, formato xx.xxx.xxx-k")
	}
	if !regexDireccion.MatchString(in.Direccion) {
		return falla(`la dirección debe ser "calle número"`)
	}
	if in.Correo != in.ConfirmarCorreo {
		return falla("los correos no coinciden")
	}
	if in.Contrasena != in.ConfirmarContrasena {
		return falla("las contraseñas no coinciden")
	}
	if len(in.Contrasena) < 4 || len(in.Contrasena) > 10 {
		return falla("la contraseña debe tener entre 4 y 10 caracteres")
	}
	if len(in.Correo) > 100 {
		return falla("el correo excede 100 caracteres")
	}
	if !regexCorreo.MatchString(in.Correo) {
		return falla("el correo debe terminar en @duoc.cl, @profesor.duoc.cl o @gmail.com")
	}
	if in.Region == "" || in.Comuna == "" {
		return falla("selecciona región y comuna")
	}
	if !chile.ComunaValida(in.Region, in.Comuna) {
		return falla("la comuna no pertenece a la región seleccionada")
	}
	return nil
}
