package i18n

var tables = map[string]map[string]string{
	"en": {
		// Common
		"search":  "Search",
		"filter":  "Filter",
		"add":     "Add",
		"edit":    "Edit",
		"delete":  "Delete",
		"view":    "View",
		"save":    "Save",
		"cancel":  "Cancel",
		"confirm": "Confirm",
		"close":   "Close",
		"loading": "Loading...",

		// Dashboard
		"dashboard":  "Dashboard",
		"adminPanel": "Admin Panel",

		// Users
		"userManagement":         "User Management",
		"manageCustomerAccounts": "Manage customer accounts and access",
		"addUser":                "Add User",
		"totalUsers":             "Total Users",
		"activeUsers":            "Active Users",
		"suspendedUsers":         "Suspended Users",
		"newThisMonth":           "New This Month",
		"user":                   "User",
		"status":                 "Status",
		"joinDate":               "Join Date",
		"services":               "Services",
		"totalSpent":             "Total Spent",
		"actions":                "Actions",

		// Services
		"serviceManagement":  "Service Management",
		"manageServicePlans": "Manage service plans and pricing",
		"addService":         "Add Service",
		"totalServices":      "Total Services",
		"activeServices":     "Active Services",
		"totalCustomers":     "Total Customers",
		"monthlyRevenue":     "Monthly Revenue",
		"configure":          "Configure",
		"features":           "Features",

		// Orders
		"orderManagement":       "Order Management",
		"monitorCustomerOrders": "Monitor and manage customer orders",
		"totalOrders":           "Total Orders",
		"activeOrders":          "Active Orders",
		"pendingPayment":        "Pending Payment",
		"orderId":               "Order ID",
		"customer":              "Customer",
		"service":               "Service",
		"amount":                "Amount",
		"nextBilling":           "Next Billing",

		// Support
		"supportManagement":     "Support Management",
		"manageCustomerSupport": "Manage customer support tickets",
		"totalTickets":          "Total Tickets",
		"openTickets":           "Open Tickets",
		"highPriority":          "High Priority",
		"resolvedToday":         "Resolved Today",
		"ticket":                "Ticket",
		"subject":               "Subject",
		"priority":              "Priority",
		"lastUpdate":            "Last Update",
		"reply":                 "Reply",

		// Status
		"active":    "Active",
		"inactive":  "Inactive",
		"suspended": "Suspended",
		"pending":   "Pending",
		"resolved":  "Resolved",
		"open":      "Open",
		"closed":    "Closed",

		// Priority
		"high":   "High",
		"medium": "Medium",
		"low":    "Low",
	},
	"es": {
		// Common
		"search":  "Buscar",
		"filter":  "Filtrar",
		"add":     "Agregar",
		"edit":    "Editar",
		"delete":  "Eliminar",
		"view":    "Ver",
		"save":    "Guardar",
		"cancel":  "Cancelar",
		"confirm": "Confirmar",
		"close":   "Cerrar",
		"loading": "Cargando...",

		// Dashboard
		"dashboard":  "Panel de Control",
		"adminPanel": "Panel de Administración",

		// Users
		"userManagement":         "Gestión de Usuarios",
		"manageCustomerAccounts": "Gestionar cuentas de clientes y acceso",
		"addUser":                "Agregar Usuario",
		"totalUsers":             "Total de Usuarios",
		"activeUsers":            "Usuarios Activos",
		"suspendedUsers":         "Usuarios Suspendidos",
		"newThisMonth":           "Nuevos este Mes",
		"user":                   "Usuario",
		"status":                 "Estado",
		"joinDate":               "Fecha de Registro",
		"services":               "Servicios",
		"totalSpent":             "Total Gastado",
		"actions":                "Acciones",

		// Services
		"serviceManagement":  "Gestión de Servicios",
		"manageServicePlans": "Gestionar planes de servicio y precios",
		"addService":         "Agregar Servicio",
		"totalServices":      "Total de Servicios",
		"activeServices":     "Servicios Activos",
		"totalCustomers":     "Total de Clientes",
		"monthlyRevenue":     "Ingresos Mensuales",
		"configure":          "Configurar",
		"features":           "Características",

		// Orders
		"orderManagement":       "Gestión de Pedidos",
		"monitorCustomerOrders": "Monitorear y gestionar pedidos de clientes",
		"totalOrders":           "Total de Pedidos",
		"activeOrders":          "Pedidos Activos",
		"pendingPayment":        "Pago Pendiente",
		"orderId":               "ID de Pedido",
		"customer":              "Cliente",
		"service":               "Servicio",
		"amount":                "Cantidad",
		"nextBilling":           "Próxima Facturación",

		// Support
		"supportManagement":     "Gestión de Soporte",
		"manageCustomerSupport": "Gestionar tickets de soporte al cliente",
		"totalTickets":          "Total de Tickets",
		"openTickets":           "Tickets Abiertos",
		"highPriority":          "Alta Prioridad",
		"resolvedToday":         "Resueltos Hoy",
		"ticket":                "Ticket",
		"subject":               "Asunto",
		"priority":              "Prioridad",
		"lastUpdate":            "Última Actualización",
		"reply":                 "Responder",

		// Status
		"active":    "Activo",
		"inactive":  "Inactivo",
		"suspended": "Suspendido",
		"pending":   "Pendiente",
		"resolved":  "Resuelto",
		"open":      "Abierto",
		"closed":    "Cerrado",

		// Priority
		"high":   "Alta",
		"medium": "Media",
		"low":    "Baja",
	},
	"pt": {
		// Common
		"search":  "Pesquisar",
		"filter":  "Filtrar",
		"add":     "Adicionar",
		"edit":    "Editar",
		"delete":  "Excluir",
		"view":    "Ver",
		"save":    "Salvar",
		"cancel":  "Cancelar",
		"confirm": "Confirmar",
		"close":   "Fechar",
		"loading": "Carregando...",

		// Dashboard
		"dashboard":  "Painel",
		"adminPanel": "Painel de Administração",

		// Users
		"userManagement":         "Gestão de Usuários",
		"manageCustomerAccounts": "Gerenciar contas de clientes e acesso",
		"addUser":                "Adicionar Usuário",
		"totalUsers":             "Total de Usuários",
		"activeUsers":            "Usuários Ativos",
		"suspendedUsers":         "Usuários Suspensos",
		"newThisMonth":           "Novos este Mês",
		"user":                   "Usuário",
		"status":                 "Status",
		"joinDate":               "Data de Cadastro",
		"services":               "Serviços",
		"totalSpent":             "Total Gasto",
		"actions":                "Ações",

		// Services
		"serviceManagement":  "Gestão de Serviços",
		"manageServicePlans": "Gerenciar planos de serviço e preços",
		"addService":         "Adicionar Serviço",
		"totalServices":      "Total de Serviços",
		"activeServices":     "Serviços Ativos",
		"totalCustomers":     "Total de Clientes",
		"monthlyRevenue":     "Receita Mensal",
		"configure":          "Configurar",
		"features":           "Recursos",

		// Orders
		"orderManagement":       "Gestão de Pedidos",
		"monitorCustomerOrders": "Monitorar e gerenciar pedidos de clientes",
		"totalOrders":           "Total de Pedidos",
		"activeOrders":          "Pedidos Ativos",
		"pendingPayment":        "Pagamento Pendente",
		"orderId":               "ID do Pedido",
		"customer":              "Cliente",
		"service":               "Serviço",
		"amount":                "Valor",
		"nextBilling":           "Próxima Cobrança",

		// Support
		"supportManagement":     "Gestão de Suporte",
		"manageCustomerSupport": "Gerenciar tickets de suporte ao cliente",
		"totalTickets":          "Total de Tickets",
		"openTickets":           "Tickets Abertos",
		"highPriority":          "Alta Prioridade",
		"resolvedToday":         "Resolvidos Hoje",
		"ticket":                "Ticket",
		"subject":               "Assunto",
		"priority":              "Prioridade",
		"lastUpdate":            "Última Atualização",
		"reply":                 "Responder",

		// Status
		"active":    "Ativo",
		"inactive":  "Inativo",
		"suspended": "Suspenso",
		"pending":   "Pendente",
		"resolved":  "Resolvido",
		"open":      "Aberto",
		"closed":    "Fechado",

		// Priority
		"high":   "Alta",
		"medium": "Média",
		"low":    "Baixa",
	},
}
