package database

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    importance TEXT NOT NULL CHECK (importance IN ('High', 'Medium', 'Low')),
    type TEXT NOT NULL CHECK (type IN ('Sales', 'Customer', 'Research')),
    customer TEXT NOT NULL CHECK (customer IN ('Loom', 'Ramp', 'Brex', 'Vanta', 'Notion', 'Linear', 'OpenAI')),
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_date ON feedback(date);
CREATE INDEX IF NOT EXISTS idx_feedback_customer ON feedback(customer);
`

const seedFeedbackSQL = `
INSERT OR IGNORE INTO feedback (id, name, description, importance, type, customer, date) VALUES
(1, 'SAML single sign-on', 'Security team requires SAML SSO before rolling out to the wider org.', 'High', 'Sales', 'Brex', '2024-01-04'),
(2, 'Bulk CSV export', 'Finance wants to export every feedback item with custom columns.', 'Low', 'Customer', 'Brex', '2024-01-11'),
(3, 'Dark mode', 'Several users asked for a dark theme for late-night triage.', 'Medium', 'Research', 'Loom', '2024-01-19'),
(4, 'Audit log retention', 'Compliance needs audit logs retained for at least 400 days.', 'High', 'Customer', 'Vanta', '2024-01-31'),
(5, 'Slack notifications', 'Post a Slack message when high-importance feedback arrives.', 'Medium', 'Sales', 'Ramp', '2024-02-06'),
(6, 'Faster search', 'Search across descriptions takes several seconds on large workspaces.', 'High', 'Customer', 'Notion', '2024-02-14'),
(7, 'Custom fields', 'Allow admins to add their own fields to feedback items.', 'Medium', 'Research', 'Linear', '2024-02-22'),
(8, 'API rate limits', 'Integration hits rate limits during nightly syncs.', 'High', 'Customer', 'OpenAI', '2024-03-01'),
(9, 'Saved filters', 'Save commonly used filter combinations per user.', 'Low', 'Research', 'Loom', '2024-03-09'),
(10, 'Webhook retries', 'Webhooks should be retried when the receiving endpoint is down.', 'Medium', 'Customer', 'Linear', '2024-03-18'),
(11, 'Usage-based pricing', 'Procurement asked for a usage-based plan instead of per-seat.', 'High', 'Sales', 'Ramp', '2024-03-27'),
(12, 'Mobile app', 'Field team wants to review feedback from their phones.', 'Low', 'Research', 'Notion', '2024-04-05'),
(13, 'SCIM provisioning', 'Automatic user provisioning through SCIM.', 'High', 'Sales', 'Vanta', '2024-04-16'),
(14, 'Duplicate detection', 'Flag feedback that looks like an existing item.', 'Medium', 'Research', 'OpenAI', '2024-04-29'),
(15, 'Keyboard shortcuts', 'Power users want shortcuts for triage actions.', 'Low', 'Customer', 'Linear', '2024-05-07'),
(16, 'Data residency', 'EU customers need their data stored in an EU region.', 'High', 'Sales', 'Notion', '2024-05-21'),
(17, 'Jira sync', 'Two-way sync between feedback items and Jira issues.', 'Medium', 'Customer', 'Brex', '2024-06-03'),
(18, 'Weekly digest email', 'Send a weekly summary of new feedback to stakeholders.', 'Low', 'Sales', 'Loom', '2024-06-18'),
(19, 'Role-based access', 'Restrict who can see feedback from strategic customers.', 'High', 'Customer', 'Ramp', '2024-07-02'),
(20, 'Sentiment tagging', 'Automatically tag feedback as positive or negative.', 'Low', 'Research', 'OpenAI', '2024-07-23'),
(21, 'Embeddable widget', 'Collect feedback directly from inside the product.', 'Medium', 'Sales', 'Vanta', '2024-08-12'),
(22, 'Custom date ranges in reports', 'Reports only support fixed periods today.', 'Low', 'Customer', 'Notion', '2024-09-04'),
(23, 'Attachment uploads', 'Attach screenshots and recordings to feedback.', 'Medium', 'Customer', 'Loom', '2024-10-15'),
(24, 'Priority roadmap view', 'Show feedback grouped by roadmap theme.', 'High', 'Research', 'Linear', '2024-11-20');
`
