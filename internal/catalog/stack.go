package catalog

// Stack option enumerations offered by the UI. Single-valued fields pick
// exactly one entry; multi-valued fields toggle any subset.
var (
	Frameworks = []string{"React", "Next.js", "Vue 3", "SvelteKit", "Astro"}
	Stylings   = []string{"Tailwind CSS", "Shadcn/UI", "Chakra UI", "Styled Components", "CSS Modules"}
	Backends   = []string{"Supabase", "Appwrite", "Pocketbase", "PostgreSQL", "N8N (Workflows)"}
	Toolings   = []string{"TypeScript", "Zod", "React Hook Form", "Prisma", "Drizzle"}

	NotificationProviders = []string{"Novu (In-App/Infra)", "OneSignal (Push)", "Twilio (SMS)", "Resend (Email)"}
	PaymentProviders      = []string{"Stripe", "LemonSqueezy", "Paddle", "PayPal"}
)
