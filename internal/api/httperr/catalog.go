package httperr

var english = map[Code]string{
	CodeInvalidPayload:     "invalid payload",
	CodeInvalidCredentials: "invalid email or password",
	CodeUserNotFound:       "no account exists for this email",
	CodeEmailInUse:         "an account already exists for this email",
	CodeWeakPassword:       "password must be at least 6 characters",
	CodeUnauthenticated:    "please sign in",
	CodeSessionExpired:     "your session has expired, please sign in again",
	CodeForbidden:          "your account is not allowed to access this page",
	CodeNotFound:           "record not found",
	CodeStaffExists:        "a staff member with this email already exists",
	CodeRoomNotFound:       "room not found",
	CodeAdvisorUnavailable: "the pricing advisor is unavailable, please try again later",
	CodeInternal:           "internal server error",
}

var french = map[Code]string{
	CodeInvalidPayload:     "requête invalide",
	CodeInvalidCredentials: "e-mail ou mot de passe incorrect",
	CodeUserNotFound:       "aucun compte n'existe pour cet e-mail",
	CodeEmailInUse:         "un compte existe déjà pour cet e-mail",
	CodeWeakPassword:       "le mot de passe doit contenir au moins 6 caractères",
	CodeUnauthenticated:    "veuillez vous connecter",
	CodeSessionExpired:     "votre session a expiré, veuillez vous reconnecter",
	CodeForbidden:          "votre compte n'a pas accès à cette page",
	CodeNotFound:           "enregistrement introuvable",
	CodeStaffExists:        "un membre du personnel utilise déjà cet e-mail",
	CodeRoomNotFound:       "chambre introuvable",
	CodeAdvisorUnavailable: "le conseiller tarifaire est indisponible, veuillez réessayer plus tard",
	CodeInternal:           "erreur interne du serveur",
}
